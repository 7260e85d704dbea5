package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("registry")
	if err != nil {
		t.Fatalf("GetTopic(registry) returned unexpected error: %v", err)
	}
	if !strings.Contains(content, "savingsVault") {
		t.Errorf("registry topic does not document the record format:\n%s", content)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) = nil error, want failure")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned unexpected error: %v", err)
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("GetAllTopics() should not list the readme")
		}
	}
	if len(topics) == 0 {
		t.Error("GetAllTopics() returned no topics")
	}
}
