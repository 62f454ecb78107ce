package version

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	if Version() != "dev" {
		t.Fatalf("expected default version dev, got %s", Version())
	}
	if Commit() != "unknown" || Date() != "unknown" {
		t.Fatalf("expected unknown commit and date, got %s / %s", Commit(), Date())
	}
}

func TestString_ContainsAllFields(t *testing.T) {
	s := String()
	for _, part := range []string{"version=", "commit=", "date="} {
		if !strings.Contains(s, part) {
			t.Fatalf("expected %q in %q", part, s)
		}
	}
}
