package pattern

import "testing"

func fill(t *testing.T, name string, n int) []uint32 {
	t.Helper()
	f, ok := Lookup(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	dst := make([]uint32, n)
	Fill(dst, f)
	return dst
}

func TestThirdsActivatesEveryThirdCell(t *testing.T) {
	dst := fill(t, "thirds", 64)
	for i, v := range dst {
		want := uint32(0)
		if i%3 == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("thirds state(%d) = %d, expected %d", i, v, want)
		}
	}
}

func TestStripesAlternatesByParity(t *testing.T) {
	dst := fill(t, "stripes", 64)
	for i, v := range dst {
		want := uint32(0)
		if i%2 == 1 {
			want = 1
		}
		if v != want {
			t.Fatalf("stripes state(%d) = %d, expected %d", i, v, want)
		}
	}
}

// Buffer B was meant to alternate by cell parity, but a legacy seeding bug
// evaluated a constant and left every cell active. That behavior lives on
// as "solid"; this test pins both down so the two can never be confused.
func TestSolidDiffersFromStripes(t *testing.T) {
	solid := fill(t, "solid", 64)
	stripes := fill(t, "stripes", 64)
	for i, v := range solid {
		if v != 1 {
			t.Fatalf("solid state(%d) = %d, expected 1", i, v)
		}
	}
	if stripes[0] != 0 || stripes[1] != 1 {
		t.Fatalf("stripes must alternate, got state(0)=%d state(1)=%d", stripes[0], stripes[1])
	}
}

func TestFillOverwritesStaleValues(t *testing.T) {
	dst := []uint32{7, 7, 7, 7}
	Fill(dst, func(i int) bool { return i == 2 })
	want := []uint32{0, 0, 1, 0}
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, expected %d", i, dst[i], want[i])
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown pattern should not resolve")
	}
}

func TestRegisterRejectsEmpty(t *testing.T) {
	Register("", func(int) bool { return true })
	if _, ok := Lookup(""); ok {
		t.Fatal("empty name should not register")
	}
	before := len(Names())
	Register("nilfn", nil)
	if len(Names()) != before {
		t.Fatal("nil func should not register")
	}
}
