package fold

import "testing"

func TestWalkPreservesOriginalByteOffsets(t *testing.T) {
	s := "Café"
	stream := Walk(s, true)

	if stream.ByteLen != len(s) {
		t.Fatalf("ByteLen = %d, want %d", stream.ByteLen, len(s))
	}
	want := []Scalar{
		{Value: 'C', Offset: 0, Width: 1},
		{Value: 'a', Offset: 1, Width: 1},
		{Value: 'f', Offset: 2, Width: 1},
		{Value: 'é', Offset: 3, Width: 2},
	}
	if len(stream.Scalars) != len(want) {
		t.Fatalf("got %d scalars, want %d", len(stream.Scalars), len(want))
	}
	for i, w := range want {
		if stream.Scalars[i] != w {
			t.Errorf("Scalars[%d] = %+v, want %+v", i, stream.Scalars[i], w)
		}
	}
}

func TestWalkFoldsWhenCaseInsensitive(t *testing.T) {
	stream := Walk("BIG", false)
	for i, want := range []rune{'b', 'i', 'g'} {
		if stream.Scalars[i].Value != want {
			t.Errorf("Scalars[%d].Value = %q, want %q", i, stream.Scalars[i].Value, want)
		}
		// Offsets must still describe the ORIGINAL uppercase scalar.
		if stream.Scalars[i].Offset != i {
			t.Errorf("Scalars[%d].Offset = %d, want %d", i, stream.Scalars[i].Offset, i)
		}
	}
}

func TestFoldStringCaseSensitiveIsIdentity(t *testing.T) {
	if got := FoldString("Big Ben", true); got != "Big Ben" {
		t.Errorf("FoldString(case-sensitive) = %q, want unchanged", got)
	}
}

func TestFoldStringCaseInsensitive(t *testing.T) {
	if got := FoldString("Big Ben", false); got != "big ben" {
		t.Errorf("FoldString(case-insensitive) = %q, want %q", got, "big ben")
	}
}

func TestWalkMultiByteScalarWidths(t *testing.T) {
	// Formula: π ≠ ∞ — each symbol here is a multi-byte scalar.
	s := "π ≠ ∞"
	stream := Walk(s, true)
	piScalar := stream.Scalars[0]
	if piScalar.Value != 'π' || piScalar.Offset != 0 || piScalar.Width != 2 {
		t.Errorf("Scalars[0] = %+v, want {π 0 2}", piScalar)
	}
	if s[piScalar.Offset:piScalar.Offset+piScalar.Width] != "π" {
		t.Errorf("span does not decode back to original scalar")
	}
}
