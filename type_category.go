package tracker

import "fmt"

// Category is a typed string for the fixed set of expense categories.
type Category string

const (
	Personal Category = "Personal"
	Other    Category = "Other"
	Bills    Category = "Bills"
)

// Categories lists all valid categories, in menu order.
func Categories() []Category { return []Category{Personal, Other, Bills} }

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Personal:
		return Personal, nil
	case Other:
		return Other, nil
	case Bills:
		return Bills, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

func (c Category) String() string { return string(c) }
