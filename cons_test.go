package cons_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/npillmayer/cons"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := cons.Compose(g, f) // type-inference puts the pieces together
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := cons.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := cons.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestIdentity(t *testing.T) {
	same := cons.Identity("lorem")
	if same != "lorem" {
		t.Logf("Identity(lorem) = %q", same)
		t.Error("expected Identity to hand back its argument, didn't")
	}
}

func TestFlip(t *testing.T) {
	concat := func(a, b string) string {
		return a + b
	}
	tacnoc := cons.Flip(concat)
	if tacnoc("b", "a") != "ab" {
		t.Logf("flipped concat = %q", tacnoc("b", "a"))
		t.Error("expected Flip(concat)(b, a) to be ab, isn't")
	}
}

func TestPair(t *testing.T) {
	p := cons.P(7, "seven")
	n, s := p.Decompose()
	if n != 7 || s != "seven" {
		t.Logf("p = %v", p)
		t.Error("expected P(7, seven) to decompose into its halves, didn't")
	}
	q := p.Swap()
	if q.Left != "seven" || q.Right != 7 {
		t.Logf("q = %v", q)
		t.Error("expected Swap to exchange the halves of a pair, didn't")
	}
}

func TestComposeWithStrconv(t *testing.T) {
	digits := cons.Compose(strconv.Itoa, func(s string) int { return len(s) })
	if digits(4711) != 4 {
		t.Logf("digits(4711) = %d", digits(4711))
		t.Error("expected digits(4711) to be 4, isn't")
	}
}
