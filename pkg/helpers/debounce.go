package helpers

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debounce returns a wrapper that delays fn until wait has passed without another
// call. Only the last call's argument reaches fn.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	return DebounceWithClock(clockwork.NewRealClock(), fn, wait)
}

// DebounceWithClock is Debounce driven by clock.
func DebounceWithClock[T any](clock clockwork.Clock, fn func(T), wait time.Duration) func(T) {
	var (
		mu    sync.Mutex
		timer clockwork.Timer
	)
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = clock.AfterFunc(wait, func() { fn(arg) })
	}
}
