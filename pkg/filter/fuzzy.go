package filter

import "github.com/sahilm/fuzzy"

// Fuzzy matches when the query characters appear in text in order, not
// necessarily adjacent ("kgr" matches "Kangaroo").
func Fuzzy() Predicate {
	return func(text, query string) bool {
		if query == "" {
			return true
		}
		return len(fuzzy.Find(query, []string{text})) > 0
	}
}
