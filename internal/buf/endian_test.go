package buf

import "testing"

func TestU16LE(t *testing.T) {
	if got := U16LE([]byte{0x01, 0x23, 0x45}); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U16LE([]byte{0xAA}); got != 0 {
		t.Fatalf("U16LE short should be 0, got 0x%x", got)
	}
	if got := U16LE(nil); got != 0 {
		t.Fatalf("U16LE nil should be 0, got 0x%x", got)
	}
}
