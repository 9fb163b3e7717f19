package listing

import "strings"

// FilterAll is the sentinel that disables a subject or condition filter.
const FilterAll = "all"

// Query defines the active filters for browsing the catalog.
type Query struct {
	Search    string
	Subject   string
	Condition string
}

// Filter returns the sublist of catalog matching every active predicate,
// preserving catalog order. The search term matches case-insensitively
// against title or author; an empty term matches everything. Subject and
// condition are exact matches, bypassed when empty or set to FilterAll.
func Filter(catalog []Listing, q Query) []Listing {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Listing, 0, len(catalog))
	for _, l := range catalog {
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Author), search) {
			continue
		}
		if !matchesFacet(q.Subject, l.Subject) {
			continue
		}
		if !matchesFacet(q.Condition, l.Condition) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesFacet(selected, value string) bool {
	return selected == "" || selected == FilterAll || selected == value
}

// Facets holds the filter options present in a catalog snapshot.
type Facets struct {
	Subjects   []string `json:"subjects"`
	Conditions []string `json:"conditions"`
}

// DeriveFacets collects the distinct subjects and conditions of catalog in
// first-seen order. Derived per snapshot rather than cached, so options
// never go stale against the catalog they describe.
func DeriveFacets(catalog []Listing) Facets {
	return Facets{
		Subjects:   distinct(catalog, func(l Listing) string { return l.Subject }),
		Conditions: distinct(catalog, func(l Listing) string { return l.Condition }),
	}
}

func distinct(catalog []Listing, key func(Listing) string) []string {
	seen := make(map[string]bool, len(catalog))
	out := make([]string, 0, len(catalog))
	for _, l := range catalog {
		k := key(l)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
