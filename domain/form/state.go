package form

import (
	"hotel-admin/domain/language"
	"slices"
)

type Field string

type Kind int

const (
	Text Kind = iota
	List
)

// Value holds either a text or a derived list, depending on Kind.
type Value struct {
	Kind Kind
	Text string
	List []string
}

func TextValue(s string) Value {
	return Value{Kind: Text, Text: s}
}

func ListValue(items ...string) Value {
	return Value{Kind: List, List: append([]string{}, items...)}
}

func (v Value) clone() Value {
	if v.Kind == List {
		return ListValue(v.List...)
	}
	return v
}

// Definition declares a field and the value it starts with and returns to on Reset.
type Definition struct {
	Field   Field
	Initial Value
}

func TextField(field Field, initial string) Definition {
	return Definition{Field: field, Initial: TextValue(initial)}
}

func ListField(field Field, initial ...string) Definition {
	return Definition{Field: field, Initial: ListValue(initial...)}
}

// State is the field-state container of a single form instance.
// Every declared field holds a value at all times.
type State struct {
	order   []Field
	initial map[Field]Value
	values  map[Field]Value
}

func NewState(definitions ...Definition) *State {
	s := &State{
		initial: make(map[Field]Value, len(definitions)),
		values:  make(map[Field]Value, len(definitions)),
	}
	for _, d := range definitions {
		if _, exists := s.initial[d.Field]; !exists {
			s.order = append(s.order, d.Field)
		}
		s.initial[d.Field] = d.Initial.clone()
	}
	s.Reset()
	return s
}

// Set replaces the value of field. List fields derive their value from raw.
// Undeclared fields are ignored.
func (s *State) Set(field Field, raw string) {
	initial, ok := s.initial[field]
	if !ok {
		return
	}
	switch initial.Kind {
	case List:
		s.values[field] = Value{Kind: List, List: language.ParseList(raw)}
	default:
		s.values[field] = TextValue(raw)
	}
}

// Reset restores every field to its declared initial value.
func (s *State) Reset() {
	for field, v := range s.initial {
		s.values[field] = v.clone()
	}
}

func (s *State) Text(field Field) string {
	return s.values[field].Text
}

func (s *State) List(field Field) []string {
	return slices.Clone(s.values[field].List)
}

func (s *State) Has(field Field) bool {
	_, ok := s.initial[field]
	return ok
}

// Fields returns the declared fields in declaration order.
func (s *State) Fields() []Field {
	return slices.Clone(s.order)
}

// ListFields returns the declared list-kind fields in declaration order.
func (s *State) ListFields() []Field {
	var fields []Field
	for _, f := range s.order {
		if s.initial[f].Kind == List {
			fields = append(fields, f)
		}
	}
	return fields
}

// Snapshot is a detached copy of the state at a point in time.
type Snapshot map[Field]Value

func (s *State) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.values))
	for field, v := range s.values {
		snap[field] = v.clone()
	}
	return snap
}

// Restore puts back the values of a snapshot taken from the same form.
func (s *State) Restore(snap Snapshot) {
	for field, v := range snap {
		if _, ok := s.initial[field]; ok {
			s.values[field] = v.clone()
		}
	}
}

func (s Snapshot) Text(field Field) string {
	return s[field].Text
}

func (s Snapshot) List(field Field) []string {
	return slices.Clone(s[field].List)
}

// With returns a copy of the snapshot where field holds a text value.
func (s Snapshot) With(field Field, text string) Snapshot {
	out := make(Snapshot, len(s))
	for f, v := range s {
		out[f] = v.clone()
	}
	out[field] = TextValue(text)
	return out
}
