package fx

import (
	"testing"
)

func TestRight(t *testing.T) {
	t.Parallel()
	e := Right[string](42)

	if !e.IsRight() || e.IsLeft() {
		t.Fatalf("expected right branch, got: right=%v, left=%v", e.IsRight(), e.IsLeft())
	}
	if e.Value() != 42 {
		t.Fatalf("expected value 42, got: %v", e.Value())
	}
	if e.Err() != "" {
		t.Fatalf("expected zero error on right branch, got: %q", e.Err())
	}
	if e.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestLeft(t *testing.T) {
	t.Parallel()
	e := Left[int]("boom")

	if e.IsRight() || !e.IsLeft() {
		t.Fatalf("expected left branch, got: right=%v, left=%v", e.IsRight(), e.IsLeft())
	}
	if e.Err() != "boom" {
		t.Fatalf("expected error 'boom', got: %q", e.Err())
	}
	if e.Value() != 0 {
		t.Fatalf("expected zero value on left branch, got: %v", e.Value())
	}
}

func TestLeftFrom_PreservesErrorAndIdentity(t *testing.T) {
	t.Parallel()
	src := Left[int]("bad input")
	dst := LeftFrom[int, string](src)

	if !dst.IsLeft() {
		t.Fatalf("expected left branch after rebuild")
	}
	if dst.Err() != "bad input" {
		t.Fatalf("expected error to carry over, got: %q", dst.Err())
	}
	if dst.Id() != src.Id() {
		t.Fatalf("expected id to carry over, got: %v vs %v", dst.Id(), src.Id())
	}
	if !dst.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("expected createdAt to carry over")
	}
}

func TestEitherIds_AreDistinct(t *testing.T) {
	t.Parallel()
	a := Right[string](1)
	b := Right[string](1)

	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids for independently constructed values")
	}
}
