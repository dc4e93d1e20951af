package docfmt

import (
	"fmt"
	"strings"
)

// Category is the layout role of a [Node]. The zero value is not a
// recognized category.
type Category int

const (
	Document Category = iota + 1
	Section
	List
	Paragraph
	Sentence
	ListItem
)

var categoryNames = map[Category]string{
	Document:  "document",
	Section:   "section",
	List:      "list",
	Paragraph: "paragraph",
	Sentence:  "sentence",
	ListItem:  "list_item",
}

var categories = []Category{Document, Section, List, Paragraph, Sentence, ListItem}

// String returns the category name, or Category(N) when unrecognized.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	_, ok := categoryNames[c]
	return ok
}

// Categories returns all recognized categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory parses a category name. Matching ignores case.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range categories {
		if categoryNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
