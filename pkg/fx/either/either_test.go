package either

import (
	"strconv"
	"testing"

	"github.com/ib-77/fx3/pkg/fx"
)

func TestMap_Right(t *testing.T) {
	t.Parallel()
	out := Map(fx.Right[string](5), func(v int) int { return v * 2 })

	if !out.IsRight() || out.Value() != 10 {
		t.Fatalf("expected right with 10, got: right=%v, val=%v", out.IsRight(), out.Value())
	}
}

func TestMap_LeftShortCircuits(t *testing.T) {
	t.Parallel()
	called := false
	out := Map(fx.Left[int]("boom"), func(v int) int {
		called = true
		return v
	})

	if out.IsRight() || out.Err() != "boom" {
		t.Fatalf("expected left 'boom', got: right=%v, err=%q", out.IsRight(), out.Err())
	}
	if called {
		t.Fatalf("mapper should not be called on left branch")
	}
}

func TestMap_IdentityLaw(t *testing.T) {
	t.Parallel()
	e := fx.Right[string](7)
	out := Map(e, func(v int) int { return v })

	if out.IsRight() != e.IsRight() || out.Value() != e.Value() {
		t.Fatalf("expected identity map to preserve tag and payload")
	}
}

func TestMap_CompositionLaw(t *testing.T) {
	t.Parallel()
	f := func(v int) int { return v + 1 }
	g := func(v int) string { return strconv.Itoa(v) }

	left := Map(Map(fx.Right[string](4), f), g)
	right := Map(fx.Right[string](4), func(v int) string { return g(f(v)) })

	if left.Value() != right.Value() || left.IsRight() != right.IsRight() {
		t.Fatalf("expected composed maps to agree, got: %v vs %v", left.Value(), right.Value())
	}
}

func TestMapLeft(t *testing.T) {
	t.Parallel()
	out := MapLeft(fx.Left[int]("boom"), func(e string) string { return e + "!" })

	if out.IsRight() || out.Err() != "boom!" {
		t.Fatalf("expected left 'boom!', got: %q", out.Err())
	}

	pass := MapLeft(fx.Right[string](3), func(e string) string { return e + "!" })
	if !pass.IsRight() || pass.Value() != 3 {
		t.Fatalf("expected right to pass through untouched")
	}
}

func TestFlatMap_Right(t *testing.T) {
	t.Parallel()
	out := FlatMap(fx.Right[string](6), func(v int) fx.Either[string, int] {
		return fx.Right[string](v * v)
	})

	if !out.IsRight() || out.Value() != 36 {
		t.Fatalf("expected right with 36, got: %v", out.Value())
	}
}

func TestFlatMap_LeftShortCircuits(t *testing.T) {
	t.Parallel()
	called := false
	out := FlatMap(fx.Left[int]("stop"), func(v int) fx.Either[string, int] {
		called = true
		return fx.Right[string](v)
	})

	if out.IsRight() || out.Err() != "stop" {
		t.Fatalf("expected left 'stop', got: right=%v, err=%q", out.IsRight(), out.Err())
	}
	if called {
		t.Fatalf("binder should not be called on left branch")
	}
}

func TestFlatMap_MonadLaws(t *testing.T) {
	t.Parallel()
	f := func(v int) fx.Either[string, int] { return fx.Right[string](v + 1) }
	g := func(v int) fx.Either[string, int] { return fx.Right[string](v * 3) }

	// left identity
	li := FlatMap(fx.Right[string](2), f)
	if li.Value() != f(2).Value() {
		t.Fatalf("left identity violated: %v vs %v", li.Value(), f(2).Value())
	}

	// right identity
	e := fx.Right[string](9)
	ri := FlatMap(e, func(v int) fx.Either[string, int] { return fx.Right[string](v) })
	if ri.Value() != e.Value() || ri.IsRight() != e.IsRight() {
		t.Fatalf("right identity violated")
	}

	// associativity
	a1 := FlatMap(FlatMap(fx.Right[string](5), f), g)
	a2 := FlatMap(fx.Right[string](5), func(v int) fx.Either[string, int] {
		return FlatMap(f(v), g)
	})
	if a1.Value() != a2.Value() {
		t.Fatalf("associativity violated: %v vs %v", a1.Value(), a2.Value())
	}
}

func TestAp_BothRight(t *testing.T) {
	t.Parallel()
	fn := fx.Right[string](func(v int) int { return v * 10 })
	out := Ap(fn, fx.Right[string](4))

	if !out.IsRight() || out.Value() != 40 {
		t.Fatalf("expected right with 40, got: %v", out.Value())
	}
}

func TestAp_FirstErrorWins(t *testing.T) {
	t.Parallel()
	fn := fx.Left[func(int) int]("e1")
	out := Ap(fn, fx.Left[int]("e2"))

	if out.IsRight() {
		t.Fatalf("expected left branch")
	}
	if out.Err() != "e1" {
		t.Fatalf("expected only the receiver's error 'e1', got: %q", out.Err())
	}
}

func TestAp_ArgumentLeft(t *testing.T) {
	t.Parallel()
	fn := fx.Right[string](func(v int) int { return v })
	out := Ap(fn, fx.Left[int]("e2"))

	if out.IsRight() || out.Err() != "e2" {
		t.Fatalf("expected left 'e2', got: right=%v, err=%q", out.IsRight(), out.Err())
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()
	got := Match(fx.Right[string](3),
		func(e string) string { return "err:" + e },
		func(v int) string { return "val:" + strconv.Itoa(v) })
	if got != "val:3" {
		t.Fatalf("expected 'val:3', got: %q", got)
	}

	got = Match(fx.Left[int]("nope"),
		func(e string) string { return "err:" + e },
		func(v int) string { return "val:" + strconv.Itoa(v) })
	if got != "err:nope" {
		t.Fatalf("expected 'err:nope', got: %q", got)
	}
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()
	if got := GetOrElse(fx.Right[string](5), func(string) int { return -1 }); got != 5 {
		t.Fatalf("expected 5, got: %v", got)
	}
	if got := GetOrElse(fx.Left[int]("e"), func(string) int { return -1 }); got != -1 {
		t.Fatalf("expected fallback -1, got: %v", got)
	}
}

func TestTap(t *testing.T) {
	t.Parallel()
	var seen int
	out := Tap(fx.Right[string](8), func(v int) { seen = v })

	if seen != 8 {
		t.Fatalf("expected side effect to see 8, got: %v", seen)
	}
	if !out.IsRight() || out.Value() != 8 {
		t.Fatalf("expected value unchanged")
	}

	called := false
	Tap(fx.Left[int]("e"), func(int) { called = true })
	if called {
		t.Fatalf("tap should not run on left branch")
	}
}

func TestTapLeft(t *testing.T) {
	t.Parallel()
	var seen string
	out := TapLeft(fx.Left[int]("oops"), func(e string) { seen = e })

	if seen != "oops" {
		t.Fatalf("expected side effect to see 'oops', got: %q", seen)
	}
	if out.IsRight() || out.Err() != "oops" {
		t.Fatalf("expected left unchanged")
	}

	called := false
	TapLeft(fx.Right[string](1), func(string) { called = true })
	if called {
		t.Fatalf("tapLeft should not run on right branch")
	}
}
