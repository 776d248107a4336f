package debug

// Immediate holds entries valid for the current frame only.
type Immediate struct {
	g       guard
	gate    *Gate
	entries []Entry
}

func newImmediate(gate *Gate) *Immediate {
	return &Immediate{
		g:       guard{name: "immediate"},
		gate:    gate,
		entries: make([]Entry, 0, 32),
	}
}

// Record appends e if the gate is on.
func (s *Immediate) Record(e Entry) {
	if !s.gate.Enabled() {
		return
	}
	s.g.do(func() {
		s.entries = append(s.entries, e)
	})
}

// Snapshot returns a copy of the entries in insertion order.
func (s *Immediate) Snapshot() []Entry {
	var out []Entry
	s.g.do(func() {
		out = make([]Entry, len(s.entries))
		copy(out, s.entries)
	})
	return out
}

// Borrow gives f the critical section and the live entry slice.
// f must not retain the slice or record into this store.
func (s *Immediate) Borrow(f func([]Entry)) {
	s.g.do(func() {
		f(s.entries)
	})
}

// Len returns the number of entries recorded since the last Clear.
func (s *Immediate) Len() int {
	var n int
	s.g.do(func() {
		n = len(s.entries)
	})
	return n
}

// Clear drops every entry. Clearing an empty store is a no-op.
func (s *Immediate) Clear() {
	s.g.do(func() {
		clear(s.entries)
		s.entries = s.entries[:0]
	})
}
