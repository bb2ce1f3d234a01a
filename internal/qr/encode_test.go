package qr

import "testing"

func TestEncodeBackendsAgree(t *testing.T) {
	for _, b := range []Backend{BackendSkip2, BackendBoombuler} {
		g, err := Encode("hello", Options{Level: LevelMedium, Backend: b})
		if err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		// version 1 symbol, no quiet zone
		if g.Size() != 21 {
			t.Fatalf("%s: size = %d, want 21", b, g.Size())
		}
		// finder pattern corners are dark, the separator next to them is light
		for _, p := range [][2]int{{0, 0}, {20, 0}, {0, 20}, {6, 6}} {
			if !g.Module(p[0], p[1]) {
				t.Fatalf("%s: module %v should be dark", b, p)
			}
		}
		if g.Module(7, 7) {
			t.Fatalf("%s: separator module (7,7) should be light", b)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode("", DefaultOptions()); err == nil {
		t.Fatal("expected error for empty content")
	}
	if _, err := Encode("x", Options{Backend: "nope"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestParse(t *testing.T) {
	if l, err := ParseLevel(" q "); err != nil || l != LevelQuartile {
		t.Fatalf("ParseLevel = %q, %v", l, err)
	}
	if _, err := ParseLevel("X"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if b, err := ParseBackend("Boombuler"); err != nil || b != BackendBoombuler {
		t.Fatalf("ParseBackend = %q, %v", b, err)
	}
}

func TestMatrix(t *testing.T) {
	m := ParseMatrix(
		"#.",
		".#",
	)
	if m.Size() != 2 || !m.Module(0, 0) || m.Module(1, 0) || !m.Module(1, 1) {
		t.Fatalf("unexpected matrix %v", m)
	}
	if m.Module(5, 5) || m.Module(-1, 0) {
		t.Fatal("out of range modules must be light")
	}
}
