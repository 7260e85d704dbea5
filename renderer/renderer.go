// Package renderer renders tracker state to markdown for display.
package renderer
