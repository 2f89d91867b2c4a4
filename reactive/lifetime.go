package reactive

// Lifetime groups subscriptions so they can be torn down together.
// The zero value is ready to use. A Lifetime is not safe for concurrent use.
type Lifetime struct {
	cleanups  []func()
	destroyed bool
}

// Add registers a cleanup func. If the lifetime is already destroyed the
// func runs immediately.
func (l *Lifetime) Add(fn func()) {
	if fn == nil {
		return
	}
	if l.destroyed {
		fn()
		return
	}
	l.cleanups = append(l.cleanups, fn)
}

// Destroy runs every registered cleanup in reverse order. Calling it again is a no-op.
func (l *Lifetime) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true
	for i := len(l.cleanups) - 1; i >= 0; i-- {
		l.cleanups[i]()
	}
	l.cleanups = nil
}

// Alive reports whether Destroy has not been called yet.
func (l *Lifetime) Alive() bool {
	return !l.destroyed
}
