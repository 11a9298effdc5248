package gate

import (
	"sync/atomic"

	"github.com/oomph-ac/strafe/assert"
	"github.com/oomph-ac/strafe/oerror"
)

// Token identifies a requester of a StackBool. The upper 32 bits hold a generation and the lower
// 32 bits an index. The zero Token is invalid.
type Token uint64

var tokenCounter atomic.Uint64

// generation marks a token as issued, keeping it non-zero even after the index wraps.
const generation = uint64(1) << 32

// NewToken returns a new unique token.
func NewToken() Token {
	return Token(generation | (tokenCounter.Add(1) & 0xffffffff))
}

// Index returns the index part of the token.
func (t Token) Index() uint32 {
	return uint32(t)
}

// StackBool is a reentrant, reference-counted boolean gate. It is enabled while no requester
// holds it disabled. Each Disable must be paired with exactly one Enable using the same token.
// The zero value is an enabled gate.
type StackBool struct {
	holders map[Token]int
	count   int

	// Misuse, if set, receives gate misuse errors in addition to them being returned.
	Misuse func(err error)
	// OnChange, if set, is called whenever the gate flips between enabled and disabled.
	OnChange func(enabled bool)
}

// Enabled returns true if no requester currently holds the gate disabled.
func (s *StackBool) Enabled() bool {
	return s.count == 0
}

// Count returns the total number of pending disables across all requesters.
func (s *StackBool) Count() int {
	return s.count
}

// Holders returns the number of distinct requesters holding the gate disabled.
func (s *StackBool) Holders() int {
	return len(s.holders)
}

// Held returns true if the token holds at least one pending disable.
func (s *StackBool) Held(t Token) bool {
	return s.holders[t] > 0
}

// Disable disables the gate on behalf of the token. A token may disable the gate several times
// and must then enable it the same number of times.
func (s *StackBool) Disable(t Token) error {
	if t == 0 {
		return s.misuse(oerror.Newk(oerror.KindGateMisuse, "disable with zero token"))
	}
	if s.holders == nil {
		s.holders = make(map[Token]int)
	}

	wasEnabled := s.Enabled()
	s.holders[t]++
	s.count++
	if wasEnabled && s.OnChange != nil {
		s.OnChange(false)
	}
	return nil
}

// Enable releases one disable held by the token. Releasing a token with no pending disable is a
// logic error: it is reported and the gate is left untouched, so the count never goes negative.
func (s *StackBool) Enable(t Token) error {
	n := s.holders[t]
	if n <= 0 {
		return s.misuse(oerror.Newk(oerror.KindGateMisuse, "token %d released without a pending disable", t.Index()))
	}

	if n == 1 {
		delete(s.holders, t)
	} else {
		s.holders[t] = n - 1
	}
	s.count--
	if s.count == 0 && s.OnChange != nil {
		s.OnChange(true)
	}
	return nil
}

// Release drops every disable that the token holds and returns how many were dropped.
func (s *StackBool) Release(t Token) int {
	n := s.holders[t]
	if n <= 0 {
		return 0
	}
	delete(s.holders, t)
	s.count -= n
	if s.count == 0 && s.OnChange != nil {
		s.OnChange(true)
	}
	return n
}

func (s *StackBool) misuse(err *oerror.Error) error {
	assert.IsTrue(false, "gate: %s", err.Err)
	if s.Misuse != nil {
		s.Misuse(err)
	}
	return err
}
