package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/cons/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeMapChangesType(t *testing.T) {
	x := Just(10)
	xx := Map(strconv.Itoa, x)
	var s string
	switch m := xx.Match(); m {
	case m.Just(&s):
	case m.Nothing():
	}
	if s != "10" {
		t.Logf("s = %q", s)
		t.Error("expected Map(itoa, Just 10) to return \"10\", didn't")
	}

	yy := Map(strconv.Itoa, Nothing[int]())
	switch m := yy.Match(); m {
	case m.Just(&s):
		t.Error("expected Map(itoa, Nothing) to stay Nothing, isn't")
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
}

func TestMaybeOneOf(t *testing.T) {
	x := OneOf(Nothing[int](), Just(7), Just(8))
	if x.WithDefault(0) != 7 {
		t.Logf("x = %d", x.WithDefault(0))
		t.Error("expected oneOf to pick the first Just, didn't")
	}

	y := OneOf(Nothing[int](), Nothing[int]())
	switch m := y.Match(); m {
	case m.Just(nil):
		t.Error("expected oneOf of two Nothings to be Nothing, isn't")
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeUncomparableValue(t *testing.T) {
	x := Just([]int{1, 2, 3}) // slices are not comparable
	var v []int
	switch m := x.Match(); m { // must not trap
	case m.Just(&v):
		t.Logf("Just(%v)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if len(v) != 3 {
		t.Errorf("expected v to be [1 2 3], is %#v", v)
	}
}
