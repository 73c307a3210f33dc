// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"net/url"
	"sort"
)

// QueryField is the form field whose value is searched for.
const QueryField = "query"

// Field is one named input of a form.
type Field struct {
	Name  string
	Value string
}

// Form is an ordered set of named fields, as a browser would serialise
// them. The same name may appear more than once.
type Form struct {
	fields []Field
}

// NewForm returns a form holding fields in order.
func NewForm(fields ...Field) *Form {
	return &Form{fields: append([]Field(nil), fields...)}
}

// FormFromValues builds a form from decoded URL values. Names are sorted so
// the result is deterministic; repeated values keep their order.
func FormFromValues(v url.Values) *Form {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	f := &Form{}
	for _, name := range names {
		for _, value := range v[name] {
			f.Add(name, value)
		}
	}
	return f
}

// Add appends a field.
func (f *Form) Add(name, value string) {
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// Count returns how many fields are named name.
func (f *Form) Count(name string) int {
	n := 0
	for _, fd := range f.fields {
		if fd.Name == name {
			n++
		}
	}
	return n
}

// Params maps each field name to its value. When a name repeats, the last
// value wins.
func (f *Form) Params() map[string]string {
	params := make(map[string]string, len(f.fields))
	for _, fd := range f.fields {
		params[fd.Name] = fd.Value
	}
	return params
}

// SubmitEvent is a form submission. Handlers must call PreventDefault to
// stop the page from performing its own navigation.
type SubmitEvent struct {
	Form *Form

	defaultPrevented bool
}

// NewSubmitEvent returns a submission of form.
func NewSubmitEvent(form *Form) *SubmitEvent {
	return &SubmitEvent{Form: form}
}

// PreventDefault suppresses the default submission behaviour.
func (e *SubmitEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool { return e.defaultPrevented }
