package magic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMangle(t *testing.T) {
	expectMangled := func(t *testing.T, label string, expected string) {
		t.Helper()
		require.Equal(t, expected, Mangle(label))
	}

	expectMangled(t, "external fs", "__TURBOPACK__external__fs__")
	expectMangled(t, "imported module ./a.js", "__TURBOPACK__imported__module__$2e$$2f$a$2e$js__")
	expectMangled(t, "ecmascript hoisting location", "__TURBOPACK__ecmascript__hoisting__location__")
	expectMangled(t, "", "__TURBOPACK____")
}

func TestMangleDeterministic(t *testing.T) {
	require.Equal(t, Mangle("imported module [project]/lib/a.js"), Mangle("imported module [project]/lib/a.js"))
}

func TestMangleDistinctLabels(t *testing.T) {
	labels := []string{
		"external fs",
		"external node:fs",
		"imported module fs",
		"a b",
		"a_b",
		"a$b",
		"a  b",
	}
	seen := make(map[string]string)
	for _, label := range labels {
		mangled := Mangle(label)
		if prev, ok := seen[mangled]; ok {
			t.Fatalf("%q and %q both mangle to %q", prev, label, mangled)
		}
		seen[mangled] = label
	}
}

func TestMangleIsValidIdentifier(t *testing.T) {
	for _, label := range []string{"external @scope/pkg", "imported module ./ä.js", "external fs/promises"} {
		mangled := Mangle(label)
		for i, c := range mangled {
			valid := c == '$' || c == '_' ||
				(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
				(i > 0 && c >= '0' && c <= '9')
			require.True(t, valid, "%q produced invalid identifier %q", label, mangled)
		}
	}
}
