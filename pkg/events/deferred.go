package events

import "time"

// Deferred schedules one-shot re-checks keyed by a generation counter.
// A token minted before Invalidate never comes due, so disabling the
// reminder between schedule and fire is a checked no-op rather than an
// accident of other guards. Single-threaded like the rest of the core.
type Deferred struct {
	gen uint64
}

// Token identifies a scheduled re-check. The zero Token is never due.
type Token struct {
	gen     uint64
	at      time.Time
	pending bool
}

// Pending reports whether the token still awaits firing. It does not check
// the generation; use Deferred.Due for that.
func (t Token) Pending() bool {
	return t.pending
}

// Schedule mints a token that comes due at the given instant.
func (d *Deferred) Schedule(at time.Time) Token {
	return Token{gen: d.gen, at: at, pending: true}
}

// Invalidate cancels all outstanding tokens.
func (d *Deferred) Invalidate() {
	d.gen++
}

// Due reports whether the token is live and its deadline has passed.
// Tokens from an older generation are dead regardless of deadline.
func (d *Deferred) Due(t Token, now time.Time) bool {
	if !t.pending || t.gen != d.gen {
		return false
	}
	return !now.Before(t.at)
}
