package collection

import "strings"

// All is the filter selection that matches every record.
const All = "all"

// Query is the user-controlled part of a list view.
type Query struct {
	Search  string
	Filters map[string]string
}

// Selection returns the active value for key, or "" when the filter is off.
func (q Query) Selection(key string) string {
	v := q.Filters[key]
	if v == All {
		return ""
	}
	return v
}

// With returns a copy of q with filter key set to value.
func (q Query) With(key, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	return Query{Search: q.Search, Filters: filters}
}

// FilterField is a categorical filter over one attribute.
type FilterField[T any] struct {
	Key      string
	Label    string
	Options  []string
	Default  string
	Accessor func(*T) string
}

// Matcher decides which records a Query selects.
type Matcher[T any] struct {
	SearchFields []func(*T) string
	FilterFields []FilterField[T]
}

// Match reports whether rec passes every active filter and the search term.
func (m Matcher[T]) Match(rec *T, q Query) bool {
	for _, f := range m.FilterFields {
		sel := q.Selection(f.Key)
		if sel != "" && f.Accessor(rec) != sel {
			return false
		}
	}
	return m.matchesSearch(rec, strings.ToLower(q.Search))
}

func (m Matcher[T]) matchesSearch(rec *T, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range m.SearchFields {
		if strings.Contains(strings.ToLower(field(rec)), term) {
			return true
		}
	}
	return false
}

// Apply returns the records of c selected by q, in collection order.
func (m Matcher[T]) Apply(c Collection[T], q Query) []*T {
	return c.Filter(func(rec *T) bool { return m.Match(rec, q) })
}

// DefaultQuery builds a Query holding every filter's default selection.
func (m Matcher[T]) DefaultQuery() Query {
	filters := make(map[string]string, len(m.FilterFields))
	for _, f := range m.FilterFields {
		def := f.Default
		if def == "" {
			def = All
		}
		filters[f.Key] = def
	}
	return Query{Filters: filters}
}
