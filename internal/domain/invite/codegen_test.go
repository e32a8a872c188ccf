package invite

import "testing"

func TestNewCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := newCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != codeLength {
			t.Fatalf("expected length %d, got %q", codeLength, code)
		}
		for _, c := range code {
			if c < 'A' || c > 'Z' {
				t.Fatalf("expected uppercase letters only, got %q", code)
			}
		}
		seen[code] = true
	}
	// 100 draws from 26^7 colliding down to a handful would mean a broken
	// generator.
	if len(seen) < 90 {
		t.Fatalf("expected near-unique codes, got %d distinct of 100", len(seen))
	}
}
