package debug

import (
	"io"
	"strings"
)

// PersistentCapacity is the number of records kept before the oldest is evicted.
const PersistentCapacity = 20

// Persistent is a bounded, frame-stamped history.
//
// Recording is not gated: history accumulates while the overlay is hidden.
type Persistent struct {
	g       guard
	clock   *Clock
	records []Record
	echo    io.Writer
}

func newPersistent(clock *Clock) *Persistent {
	return &Persistent{
		g:       guard{name: "persistent"},
		clock:   clock,
		records: make([]Record, 0, PersistentCapacity+1),
	}
}

// Record stamps e with the current frame and appends it, evicting the oldest
// record once the store is full.
func (s *Persistent) Record(e Entry) {
	// the clock is read outside the critical section; a concurrent Advance can
	// attribute the record to the neighbouring frame.
	r := Record{Frame: s.clock.Current(), Entry: e}
	var echo io.Writer
	s.g.do(func() {
		s.records = append(s.records, r)
		if len(s.records) > PersistentCapacity {
			copy(s.records, s.records[1:])
			s.records[len(s.records)-1] = Record{}
			s.records = s.records[:len(s.records)-1]
		}
		echo = s.echo
	})
	// echo runs unlocked; a slow or failing writer never holds the store.
	if echo != nil {
		_, _ = io.WriteString(echo, r.String()+"\n")
	}
}

// Recent returns up to n records, most recent first.
func (s *Persistent) Recent(n int) []Record {
	if n <= 0 {
		return []Record{}
	}
	var out []Record
	s.g.do(func() {
		if n > len(s.records) {
			n = len(s.records)
		}
		out = make([]Record, 0, n)
		for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
			out = append(out, s.records[i])
		}
	})
	return out
}

// Len returns the number of records held.
func (s *Persistent) Len() int {
	var n int
	s.g.do(func() {
		n = len(s.records)
	})
	return n
}

// Tail writes the last n records to w, oldest first, one per line.
func (s *Persistent) Tail(w io.Writer, n int) error {
	recent := s.Recent(n)
	b := strings.Builder{}
	for i := len(recent) - 1; i >= 0; i-- {
		b.WriteString(recent[i].String())
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// SetEcho writes every subsequent record to w as a line. A nil w stops echoing.
// Writes happen after the store is unlocked, so w may call back into the
// Instrument. Write errors are ignored.
func (s *Persistent) SetEcho(w io.Writer) {
	s.g.do(func() {
		s.echo = w
	})
}
