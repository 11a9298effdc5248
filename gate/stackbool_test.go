package gate

import (
	"math/rand"
	"testing"

	"github.com/oomph-ac/strafe/assert"
	"github.com/oomph-ac/strafe/oerror"
)

func TestZeroValueEnabled(t *testing.T) {
	var g StackBool
	if !g.Enabled() {
		t.Fatal("zero value gate should be enabled")
	}
}

func TestIndependentRequesters(t *testing.T) {
	var g StackBool
	a, b := NewToken(), NewToken()
	if a == b {
		t.Fatal("tokens must be unique")
	}

	g.Disable(a)
	g.Disable(b)
	if err := g.Enable(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Enabled() {
		t.Fatal("gate enabled while b still holds it")
	}
	if err := g.Enable(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Enabled() {
		t.Fatal("gate should be enabled once both released")
	}
}

func TestReentrantToken(t *testing.T) {
	var g StackBool
	a := NewToken()
	g.Disable(a)
	g.Disable(a)
	g.Enable(a)
	if g.Enabled() {
		t.Fatal("reentrant disable released after a single enable")
	}
	g.Enable(a)
	if !g.Enabled() || g.Held(a) {
		t.Fatal("gate should be enabled after balanced enables")
	}
}

func TestOverReleaseIsReportedAndClamped(t *testing.T) {
	var (
		g        StackBool
		reported int
	)
	g.Misuse = func(error) { reported++ }
	a, b := NewToken(), NewToken()

	err := g.Enable(a)
	if !oerror.IsKind(err, oerror.KindGateMisuse) {
		t.Fatalf("expected gate misuse error, got %v", err)
	}
	if reported != 1 {
		t.Fatalf("misuse hook called %d times, want 1", reported)
	}
	if g.Count() != 0 {
		t.Fatalf("count = %d after over-release, want 0", g.Count())
	}

	// A stray release must not cancel another requester's disable.
	g.Disable(b)
	g.Enable(a)
	if g.Enabled() {
		t.Fatal("release with the wrong token re-enabled the gate")
	}
}

func TestZeroTokenRejected(t *testing.T) {
	var g StackBool
	if err := g.Disable(0); !oerror.IsKind(err, oerror.KindGateMisuse) {
		t.Fatalf("expected misuse error, got %v", err)
	}
	if !g.Enabled() {
		t.Fatal("zero token disabled the gate")
	}
}

func TestDebugAssertPanics(t *testing.T) {
	assert.Debug = true
	defer func() {
		assert.Debug = false
		if recover() == nil {
			t.Fatal("expected panic with assertions enabled")
		}
	}()
	var g StackBool
	g.Enable(NewToken())
}

func TestOnChange(t *testing.T) {
	var (
		g     StackBool
		flips []bool
	)
	g.OnChange = func(enabled bool) { flips = append(flips, enabled) }
	a, b := NewToken(), NewToken()
	g.Disable(a)
	g.Disable(b)
	g.Enable(a)
	g.Enable(b)
	if len(flips) != 2 || flips[0] || !flips[1] {
		t.Fatalf("unexpected transitions %v", flips)
	}
}

func TestRelease(t *testing.T) {
	var g StackBool
	a := NewToken()
	g.Disable(a)
	g.Disable(a)
	if n := g.Release(a); n != 2 {
		t.Fatalf("released %d, want 2", n)
	}
	if !g.Enabled() {
		t.Fatal("gate should be enabled after release")
	}
}

// Random interleavings of balanced pairs plus stray enables must leave the gate enabled exactly when
// every disable has been matched.
func TestBalanceProperty(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		var g StackBool
		tokens := []Token{NewToken(), NewToken(), NewToken(), NewToken()}
		pending := map[Token]int{}

		for step := 0; step < 60; step++ {
			tok := tokens[r.Intn(len(tokens))]
			if r.Intn(2) == 0 {
				g.Disable(tok)
				pending[tok]++
			} else {
				g.Enable(tok)
				if pending[tok] > 0 {
					pending[tok]--
				}
			}

			total := 0
			for _, n := range pending {
				total += n
			}
			if g.Count() != total {
				t.Fatalf("round %d step %d: count = %d, want %d", round, step, g.Count(), total)
			}
			if g.Enabled() != (total == 0) {
				t.Fatalf("round %d step %d: enabled = %v with %d pending", round, step, g.Enabled(), total)
			}
		}
	}
}
