package guard

import "sync"

// Navigator is the screen history stack. Every entry it holds passed the
// guard at the time it was recorded.
type Navigator struct {
	mu      sync.Mutex
	history []string
}

// NewNavigator returns a navigator positioned at [HomePath].
func NewNavigator() *Navigator {
	return &Navigator{history: []string{HomePath}}
}

// Current returns the path on top of the history.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[len(n.history)-1]
}

// History returns a copy of the stack, bottom first.
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

// Navigate evaluates the guard for path. An allowed path is pushed; a
// redirect pushes its target instead and the blocked path is never recorded.
// The returned path is the screen to show.
func (n *Navigator) Navigate(path string, authenticated bool) (string, Decision) {
	n.mu.Lock()
	defer n.mu.Unlock()

	target, decision := evaluate(path, authenticated)
	n.pushLocked(target)
	return target, decision
}

// Revalidate re-runs the guard on the current path after a session change.
// On redirect the current entry is replaced by the target.
func (n *Navigator) Revalidate(authenticated bool) (string, Decision) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.revalidateLocked(authenticated)
}

// Back pops the current entry (never below the root) and re-validates the
// entry it lands on.
func (n *Navigator) Back(authenticated bool) (string, Decision) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.history) > 1 {
		n.history = n.history[:len(n.history)-1]
	}
	return n.revalidateLocked(authenticated)
}

func (n *Navigator) revalidateLocked(authenticated bool) (string, Decision) {
	top := len(n.history) - 1
	target, decision := evaluate(n.history[top], authenticated)
	if !decision.Allow {
		n.history[top] = target
		n.dedupeTopLocked()
	}
	return n.history[len(n.history)-1], decision
}

func (n *Navigator) pushLocked(path string) {
	if n.history[len(n.history)-1] == path {
		return
	}
	n.history = append(n.history, path)
}

// dedupeTopLocked collapses a replaced entry into an identical one below it.
func (n *Navigator) dedupeTopLocked() {
	l := len(n.history)
	if l > 1 && n.history[l-1] == n.history[l-2] {
		n.history = n.history[:l-1]
	}
}

// evaluate resolves path and follows at most one redirect. Redirect targets
// are always allowed for the same session flag.
func evaluate(path string, authenticated bool) (string, Decision) {
	resolved, region := Resolve(path)
	decision := CanEnter(region, authenticated)
	if decision.Allow {
		return resolved, decision
	}
	return decision.RedirectTo, decision
}
