package drive

import "testing"

func TestEscapeQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "דנה לוי - 2025-03-10", "דנה לוי - 2025-03-10"},
		{"single quote", "O'Brien", `O\'Brien`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash before quote", `a\'b`, `a\\\'b`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := escapeQuery(tc.in); got != tc.want {
				t.Fatalf("escapeQuery(%q) got=%q want=%q", tc.in, got, tc.want)
			}
		})
	}
}
