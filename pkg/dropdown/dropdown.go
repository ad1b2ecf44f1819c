// Package dropdown implements a searchable single-select widget over a
// caller-supplied option list. The widget is generic over the option type:
// it never inspects option shape beyond the accessor triple (label, value,
// render), so countries, units, or any other domain plug in unchanged.
//
// State machine:
//
//	closed --Open--> open --(Select | Dismiss)--> closed
//
// While open, a case-insensitive substring filter narrows the visible
// options; the filter text is discarded on every close.
package dropdown

import "errors"

// Accessors supplies the three functions the widget uses to read an option.
// Label and Value are required; Render defaults to Label when nil.
type Accessors[T any] struct {
	// Label produces the text the filter matches against and the closed
	// control displays for the selected option.
	Label func(T) string

	// Value produces the opaque value committed through OnChange. The widget
	// never hands the option object itself to the caller.
	Value func(T) string

	// Render produces the display markup or text for an option row.
	Render func(T) string
}

// ErrDisabled is returned when Open is called on a disabled widget.
var ErrDisabled = errors.New("dropdown: widget is disabled")

// ErrNoSuchOption is returned when Select is given an index outside the
// currently visible set.
var ErrNoSuchOption = errors.New("dropdown: no option at index")

// Widget is a single-select over options of type T. The zero value is not
// usable; construct with New.
type Widget[T any] struct {
	options   []T
	accessors Accessors[T]
	config    Config
	onChange  func(value string)

	open   bool
	filter string
	value  string
}

// New builds a widget. The option slice is read-only to the widget; onChange
// receives the committed value on every selection and may be nil.
func New[T any](options []T, accessors Accessors[T], onChange func(string), fns ...ConfigFn) (*Widget[T], error) {
	if accessors.Label == nil {
		return nil, errors.New("dropdown: label accessor is required")
	}
	if accessors.Value == nil {
		return nil, errors.New("dropdown: value accessor is required")
	}
	if accessors.Render == nil {
		accessors.Render = accessors.Label
	}
	return &Widget[T]{
		options:   options,
		accessors: accessors,
		config:    NewConfig(fns...),
		onChange:  onChange,
	}, nil
}

// Open transitions the widget from closed to open. Opening a disabled widget
// fails; opening an already open widget is a no-op.
func (w *Widget[T]) Open() error {
	if w.config.Disabled {
		return ErrDisabled
	}
	w.open = true
	return nil
}

// IsOpen reports whether the option list is showing.
func (w *Widget[T]) IsOpen() bool { return w.open }

// Dismiss closes the widget without committing, the outside-click path.
// The filter text is cleared.
func (w *Widget[T]) Dismiss() {
	w.open = false
	w.filter = ""
}

// SetFilter replaces the filter text. Only meaningful while open.
func (w *Widget[T]) SetFilter(query string) {
	if !w.open {
		return
	}
	w.filter = query
}

// Filter returns the current filter text.
func (w *Widget[T]) Filter() string { return w.filter }

// Visible returns the options whose label contains the filter text
// case-insensitively, prefix matches first. With an empty filter every
// option is visible in the caller's order.
func (w *Widget[T]) Visible() []T {
	return filterOptions(w.options, w.accessors.Label, w.filter)
}

// NoMatches reports that the filter excluded every option, the state the
// consuming surface must render explicitly rather than as an empty list.
func (w *Widget[T]) NoMatches() bool {
	return w.open && w.filter != "" && len(w.Visible()) == 0
}

// Select commits the option at index within the Visible() set: the value
// accessor's result is stored, OnChange fires with it, and the widget closes
// with its filter cleared.
func (w *Widget[T]) Select(index int) error {
	visible := w.Visible()
	if index < 0 || index >= len(visible) {
		return ErrNoSuchOption
	}
	w.value = w.accessors.Value(visible[index])
	w.open = false
	w.filter = ""
	if w.onChange != nil {
		w.onChange(w.value)
	}
	return nil
}

// SetValue seeds the current value without firing OnChange, for prefilled
// drafts.
func (w *Widget[T]) SetValue(value string) { w.value = value }

// Value returns the committed value, "" when nothing is selected.
func (w *Widget[T]) Value() string { return w.value }

// Selected returns the option matching the committed value, if any.
func (w *Widget[T]) Selected() (T, bool) {
	for _, option := range w.options {
		if w.accessors.Value(option) == w.value {
			return option, true
		}
	}
	var zero T
	return zero, false
}

// DisplayText returns what the closed control shows: the selected option's
// label, or the placeholder when nothing is selected.
func (w *Widget[T]) DisplayText() string {
	if option, ok := w.Selected(); ok {
		return w.accessors.Label(option)
	}
	return w.config.Placeholder
}

// Config returns a copy of the widget configuration.
func (w *Widget[T]) Config() Config { return w.config }
