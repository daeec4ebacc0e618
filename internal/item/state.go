package item

// State is the opaque typed key-value data embedded in a finalized stack.
// It is written during finalization and afterwards mutated only by event
// reactors; the single-threaded dispatch model means no locking is needed.
type State struct {
	values map[Tag]any
}

func newState() State {
	return State{values: make(map[Tag]any)}
}

// Int returns the integer stored under key, if present and an integer.
func (s *State) Int(key Tag) (int, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// SetInt stores an integer under key.
func (s *State) SetInt(key Tag, value int) {
	s.values[key] = value
}

// String returns the string stored under key, if present and a string.
func (s *State) String(key Tag) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// SetString stores a string under key.
func (s *State) SetString(key Tag, value string) {
	s.values[key] = value
}

// Len returns the number of stored values.
func (s *State) Len() int {
	return len(s.values)
}

// Snapshot returns a copy of the stored values, for tests and inspection.
func (s *State) Snapshot() map[Tag]any {
	out := make(map[Tag]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
