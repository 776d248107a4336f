package debug

import (
	"errors"
	"fmt"
	rtdebug "runtime/debug"
	"sync"
	"sync/atomic"
)

// ErrPoisoned is the panic value (wrapped) raised by any operation on a store
// whose critical section previously panicked.
var ErrPoisoned = errors.New("debug store poisoned")

// PoisonInfo describes the panic that poisoned a store.
type PoisonInfo struct {
	Store string
	Value any
	Stack []byte
}

// guard is a mutex that refuses further use after a panic inside it.
type guard struct {
	name     string
	mu       sync.Mutex
	poisoned atomic.Bool
	onPoison func(PoisonInfo)
}

func (g *guard) do(fn func()) {
	g.mu.Lock()
	if g.poisoned.Load() {
		g.mu.Unlock()
		panic(fmt.Errorf("%s: %w", g.name, ErrPoisoned))
	}

	done := false
	defer func() {
		if done {
			g.mu.Unlock()
			return
		}
		v := recover()
		g.poisoned.Store(true)
		g.mu.Unlock()
		if g.onPoison != nil {
			g.onPoison(PoisonInfo{Store: g.name, Value: v, Stack: rtdebug.Stack()})
		}
		panic(v)
	}()

	fn()
	done = true
}

func (g *guard) isPoisoned() bool { return g.poisoned.Load() }

// poisonNotifier fires a handler at most once per Instrument.
type poisonNotifier struct {
	once    sync.Once
	handler atomic.Value // func(PoisonInfo)
}

func (n *poisonNotifier) set(fn func(PoisonInfo)) {
	n.handler.Store(fn)
}

func (n *poisonNotifier) notify(info PoisonInfo) {
	n.once.Do(func() {
		if v := n.handler.Load(); v != nil {
			if fn, ok := v.(func(PoisonInfo)); ok && fn != nil {
				fn(info)
			}
		}
	})
}
