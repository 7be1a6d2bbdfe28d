package funnel

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := NewID("funnel")
		if !strings.HasPrefix(id, "funnel") || len(id) <= len("funnel") {
			t.Fatalf("unexpected id %q", id)
		}
		if strings.ContainsAny(id[len("funnel"):], "-") {
			t.Fatalf("id %q contains a dash", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
