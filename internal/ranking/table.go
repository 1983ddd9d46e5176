package ranking

// Key binds a user-facing sort label to the column it orders and its
// default direction.
type Key[T any] struct {
	Label     string
	Column    string
	Ascending bool
	Value     func(T) float64
}

// Direction is the key's default direction.
func (k Key[T]) Direction() Direction {
	return DirectionOf(k.Ascending)
}

// Table is the fixed set of sort keys a view offers.
type Table[T any] struct {
	keys         []Key[T]
	defaultLabel string
}

// NewTable builds a table. defaultLabel must name one of keys; otherwise the
// first key is the default.
func NewTable[T any](defaultLabel string, keys ...Key[T]) Table[T] {
	return Table[T]{keys: keys, defaultLabel: defaultLabel}
}

// Lookup finds a key by label.
func (t Table[T]) Lookup(label string) (Key[T], bool) {
	for _, k := range t.keys {
		if k.Label == label {
			return k, true
		}
	}
	return Key[T]{}, false
}

// Default is the key used when no valid label was requested.
func (t Table[T]) Default() Key[T] {
	if k, ok := t.Lookup(t.defaultLabel); ok {
		return k
	}
	if len(t.keys) > 0 {
		return t.keys[0]
	}
	return Key[T]{}
}

// Resolve returns the key for label, falling back to Default.
func (t Table[T]) Resolve(label string) Key[T] {
	if k, ok := t.Lookup(label); ok {
		return k
	}
	return t.Default()
}

// Labels lists the labels in display order.
func (t Table[T]) Labels() []string {
	out := make([]string, len(t.keys))
	for i, k := range t.keys {
		out[i] = k.Label
	}
	return out
}
