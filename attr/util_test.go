package attr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pairs flattens a set for comparison.
func pairs(s *Set) [][2]string {
	var out [][2]string
	for k, v := range s.All() {
		out = append(out, [2]string{k, v})
	}
	return out
}
