package fp_test

import (
	"testing"

	"github.com/charmingruby/hom/fp"
)

func TestPipeComposeCurry(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	curried := fp.Curry(sum)
	if curried(2)(3) != 5 {
		t.Fatalf("unexpected curry result")
	}
	pipeline := fp.Compose(
		func(i int) int { return i * 2 },
		func(i int) int { return i + 1 },
	)
	if pipeline(3) != 8 {
		t.Fatalf("compose result mismatch")
	}
	final := fp.Pipe(1, func(i int) int { return i + 1 }, func(i int) int { return i * 5 })
	if final != 10 {
		t.Fatalf("pipe result mismatch")
	}
}

func TestConstantAndConst(t *testing.T) {
	thunk := fp.Constant("ready")
	if thunk() != "ready" {
		t.Fatalf("constant thunk mismatch")
	}
	ignore := fp.Const[string](7)
	if ignore("a") != 7 || ignore("totally different") != 7 {
		t.Fatalf("const should ignore the argument")
	}
}

func TestCompose2AppliesRightToLeft(t *testing.T) {
	length := func(s string) int { return len(s) }
	double := func(n int) int { return n * 2 }
	fn := fp.Compose2(double, length)
	if fn("gopher") != 12 {
		t.Fatalf("expected length to run before double")
	}
}

func TestCompose3AppliesRightToLeft(t *testing.T) {
	fn := fp.Compose3(
		func(n int) int { return n * 10 },
		func(n int) int { return n + 1 },
		func(s string) int { return len(s) },
	)
	if fn("go") != 30 {
		t.Fatalf("expected len, then +1, then *10")
	}
}

func TestUncurryInvertsCurry(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	roundTrip := fp.Uncurry(fp.Curry(sub))
	if roundTrip(10, 4) != sub(10, 4) {
		t.Fatalf("uncurry(curry(fn)) should behave like fn")
	}
}

func TestFlipSwapsArguments(t *testing.T) {
	div := func(a, b int) int { return a / b }
	flipped := fp.Flip(div)
	if flipped(2, 10) != 5 {
		t.Fatalf("flip should swap the arguments")
	}
}
