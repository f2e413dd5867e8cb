package entropy

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 200; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
	}

	ap := a.Perm(50)
	bp := b.Perm(50)
	for i := range ap {
		if ap[i] != bp[i] {
			t.Fatalf("permutation diverged at %d: %d != %d", i, ap[i], bp[i])
		}
	}
}

func TestNewFromEntropyDrawsInRange(t *testing.T) {
	src := NewFromEntropy()
	for i := 0; i < 100; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
		n := src.Intn(9)
		if n < 0 || n >= 9 {
			t.Fatalf("Intn(9) out of range: %d", n)
		}
	}
}
