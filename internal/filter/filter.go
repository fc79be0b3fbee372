// Package filter derives filtered views of content collections from the
// visitor's category and technology selection.
package filter

import (
	"slices"
	"strings"
)

// All selects every value of a facet.
const All = "All"

// Entry is filterable content.
type Entry interface {
	FilterCategory() string
	FilterTags() []string
}

// Selection is the current facet choice. Empty facets mean All.
type Selection struct {
	Category   string
	Technology string
}

// NewSelection builds a selection from raw request values.
func NewSelection(category, technology string) Selection {
	return Selection{
		Category:   normalize(category),
		Technology: normalize(technology),
	}
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, All) {
		return All
	}
	return v
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}

// Active reports whether any facet narrows the view.
func (s Selection) Active() bool {
	return !isAll(s.Category) || !isAll(s.Technology)
}

// Clear returns the identity selection.
func (s Selection) Clear() Selection {
	return Selection{Category: All, Technology: All}
}

// Match reports whether e passes every enabled facet.
func (s Selection) Match(e Entry) bool {
	if !isAll(s.Category) && e.FilterCategory() != s.Category {
		return false
	}
	if !isAll(s.Technology) && !slices.Contains(e.FilterTags(), s.Technology) {
		return false
	}
	return true
}

// Apply returns the entries matching sel, in their original order. The
// result is always a new slice.
func Apply[T Entry](entries []T, sel Selection) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if sel.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Options lists the selectable categories and technologies, each led by
// All and otherwise in first-seen order.
func Options[T Entry](entries []T) (categories, technologies []string) {
	categories = []string{All}
	technologies = []string{All}
	seenCat := map[string]bool{}
	seenTech := map[string]bool{}
	for _, e := range entries {
		if c := e.FilterCategory(); c != "" && !seenCat[c] {
			seenCat[c] = true
			categories = append(categories, c)
		}
		for _, t := range e.FilterTags() {
			if t != "" && !seenTech[t] {
				seenTech[t] = true
				technologies = append(technologies, t)
			}
		}
	}
	return categories, technologies
}
