package testkit

import "testing"

var nowSeam = func() string { return "real" }

func TestSwapRestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &nowSeam, func() string { return "fake" })
		if got := nowSeam(); got != "fake" {
			t.Fatalf("got %q want fake", got)
		}
	})
	if got := nowSeam(); got != "real" {
		t.Fatalf("not restored, got %q", got)
	}
}
