// Package entities declares one configuration table per admin entity. The
// generic list engine reads search fields, filters, status colors, actions
// and counters from these tables instead of hard-coding six pages.
package entities

import (
	"time"

	"livelink/internal/collection"
	"livelink/internal/ui"
)

type Kind string

const (
	KindDrivers   Kind = "drivers"
	KindUsers     Kind = "users"
	KindRides     Kind = "rides"
	KindTickets   Kind = "tickets"
	KindAlerts    Kind = "alerts"
	KindDocuments Kind = "documents"
)

var AllKinds = []Kind{KindDrivers, KindUsers, KindRides, KindTickets, KindAlerts, KindDocuments}

// Action parameter keys.
const (
	ParamReason     = "reason"
	ParamResolution = "resolution"
	ParamAssignee   = "assignee"
)

type Params map[string]string

// Env is the context an action runs in. Operator is the acting admin.
type Env struct {
	Operator string
	Now      time.Time
}

// Action is a named record transition. Apply receives a copy of the record
// and reports whether it changed anything; it must return the record
// untouched when it is already in the target state.
type Action[T any] struct {
	Name    string
	Label   string
	Variant ui.ButtonVariant
	// Params lists required parameter keys.
	Params []string
	// Available decides whether a renderer offers the action. It never
	// guards Apply.
	Available func(*T) bool
	Apply     func(rec T, params Params, env Env) (T, bool)
}

func (a Action[T]) AvailableFor(rec *T) bool {
	return a.Available == nil || a.Available(rec)
}

type Counter[T any] struct {
	Key     string
	Label   string
	Variant ui.BadgeVariant
	Match   func(*T) bool
}

// Aggregate sums Value over the records Match selects.
type Aggregate[T any] struct {
	Key   string
	Label string
	Match func(*T) bool
	Value func(*T) float64
}

type Column[T any] struct {
	Header string
	Width  int
	Value  func(*T) string
}

// Field is one label/value line of a record's detail view.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Config[T any] struct {
	Kind     Kind
	Title    string
	Singular string
	Icon     ui.IconName

	ID     func(*T) string
	Status func(*T) string

	Matcher       collection.Matcher[T]
	StatusVariant func(status string) ui.BadgeVariant

	Columns []Column[T]
	Details func(*T) []Field

	Actions    []Action[T]
	Counters   []Counter[T]
	Aggregates []Aggregate[T]
}

// Variant maps a status to its badge. Unknown statuses are neutral.
func (c Config[T]) Variant(status string) ui.BadgeVariant {
	if c.StatusVariant == nil {
		return ui.BadgeNeutral
	}
	return c.StatusVariant(status)
}

func (c Config[T]) Action(name string) (Action[T], bool) {
	for _, a := range c.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action[T]{}, false
}

// Row projects rec into the non-generic shape renderers consume.
func (c Config[T]) Row(rec *T) Row {
	cells := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		cells[i] = col.Value(rec)
	}
	var available []string
	for _, a := range c.Actions {
		if a.AvailableFor(rec) {
			available = append(available, a.Name)
		}
	}
	status := c.Status(rec)
	row := Row{
		ID:      c.ID(rec),
		Status:  status,
		Variant: c.Variant(status),
		Cells:   cells,
		Actions: available,
	}
	if c.Details != nil {
		row.Details = c.Details(rec)
	}
	return row
}

// Counts evaluates every counter and aggregate over records.
func (c Config[T]) Counts(records []*T) Counts {
	counts := Counts{Counters: make([]Count, 0, len(c.Counters))}
	for _, counter := range c.Counters {
		n := 0
		for _, rec := range records {
			if counter.Match(rec) {
				n++
			}
		}
		counts.Counters = append(counts.Counters, Count{
			Key: counter.Key, Label: counter.Label, Variant: counter.Variant, Value: n,
		})
	}
	for _, agg := range c.Aggregates {
		total := 0.0
		for _, rec := range records {
			if agg.Match == nil || agg.Match(rec) {
				total += agg.Value(rec)
			}
		}
		counts.Totals = append(counts.Totals, Total{Key: agg.Key, Label: agg.Label, Value: total})
	}
	return counts
}

// Describe returns the static shape of the page: filters, columns,
// actions and counters.
func (c Config[T]) Describe() Descriptor {
	d := Descriptor{
		Kind:     c.Kind,
		Title:    c.Title,
		Singular: c.Singular,
		Icon:     c.Icon,
	}
	for _, f := range c.Matcher.FilterFields {
		def := f.Default
		if def == "" {
			def = collection.All
		}
		d.Filters = append(d.Filters, FilterDescriptor{
			Key: f.Key, Label: f.Label, Options: f.Options, Default: def,
		})
	}
	for _, col := range c.Columns {
		d.Columns = append(d.Columns, ColumnDescriptor{Header: col.Header, Width: col.Width})
	}
	for _, a := range c.Actions {
		d.Actions = append(d.Actions, ActionDescriptor{
			Name: a.Name, Label: a.Label, Variant: a.Variant, Params: a.Params,
		})
	}
	for _, counter := range c.Counters {
		d.Counters = append(d.Counters, counter.Key)
	}
	return d
}

// Row is a type-erased record projection.
type Row struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Variant ui.BadgeVariant `json:"variant"`
	Cells   []string        `json:"cells"`
	Actions []string        `json:"actions"`
	Details []Field         `json:"details,omitempty"`
}

type Count struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Variant ui.BadgeVariant `json:"variant"`
	Value   int             `json:"value"`
}

type Total struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Counts struct {
	Counters []Count `json:"counters"`
	Totals   []Total `json:"totals,omitempty"`
}

// Value returns the counter with key, or 0.
func (c Counts) Value(key string) int {
	for _, count := range c.Counters {
		if count.Key == key {
			return count.Value
		}
	}
	return 0
}

// Total returns the aggregate with key, or 0.
func (c Counts) Total(key string) float64 {
	for _, t := range c.Totals {
		if t.Key == key {
			return t.Value
		}
	}
	return 0
}

type FilterDescriptor struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
	Default string   `json:"default"`
}

type ColumnDescriptor struct {
	Header string `json:"header"`
	Width  int    `json:"width"`
}

type ActionDescriptor struct {
	Name    string           `json:"name"`
	Label   string           `json:"label"`
	Variant ui.ButtonVariant `json:"variant"`
	Params  []string         `json:"params,omitempty"`
}

type Descriptor struct {
	Kind     Kind               `json:"kind"`
	Title    string             `json:"title"`
	Singular string             `json:"singular"`
	Icon     ui.IconName        `json:"icon"`
	Filters  []FilterDescriptor `json:"filters"`
	Columns  []ColumnDescriptor `json:"columns"`
	Actions  []ActionDescriptor `json:"actions"`
	Counters []string           `json:"counters"`
}

// Action returns the descriptor for name.
func (d Descriptor) Action(name string) (ActionDescriptor, bool) {
	for _, a := range d.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return ActionDescriptor{}, false
}

func options[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func all[T any](*T) bool { return true }
