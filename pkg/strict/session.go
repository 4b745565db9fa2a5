package strict

import "sync"

// Result is one recorded validation outcome. Err is nil for a passed check.
type Result struct {
	Err *LazyError
}

// OK reports whether the check passed.
func (r Result) OK() bool {
	return r.Err == nil
}

// resultLog is the shared, mutex-guarded, append-only outcome sequence. The
// session owns it; scopes only reference it. The lock is held for the
// duration of a single push or snapshot copy and is never re-entered.
type resultLog struct {
	mu      sync.Mutex
	entries []Result
}

func (l *resultLog) append(r Result) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, r)
}

func (l *resultLog) snapshot() []Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Result(nil), l.entries...)
}

// Session owns the result log shared by all of its validation scopes.
// All methods are safe for concurrent use.
type Session struct {
	log resultLog
}

// NewSession creates a session with an empty result log.
func NewSession() *Session {
	return &Session{}
}

// Results returns a snapshot of every recorded outcome in append order. The
// snapshot is a copy; later checks do not change it.
func (s *Session) Results() []Result {
	return s.log.snapshot()
}

// Failures returns only the failed outcomes, preserving their relative
// order. The returned errors are owned values that stay usable after the
// session is gone.
func (s *Session) Failures() []*LazyError {
	var failures []*LazyError
	for _, r := range s.log.snapshot() {
		if r.Err != nil {
			failures = append(failures, r.Err)
		}
	}
	return failures
}

// Validate opens a scope labeled label against this session's log and
// invokes body with it. Outcomes are recorded, never returned: callers read
// Results or Failures once the batch of checks has run.
func (s *Session) Validate(label string, body func(*Scope)) {
	body(&Scope{label: label, log: &s.log})
}

// ValidateCustom is Validate with an error-generator override: every
// constraint failure recorded by the scope is built by generate instead of
// the violated constraint's own GenerateError.
func (s *Session) ValidateCustom(label string, generate ErrorGenerator, body func(*Scope)) {
	body(&Scope{label: label, log: &s.log, generate: generate})
}
