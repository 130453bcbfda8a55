package intent

import "testing"

func TestWordToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"one", 1, true},
		{"seven", 7, true},
		{"twelve", 12, true},
		{"nineteen", 19, true},
		{"twenty", 20, true},
		{"twenty-five", 25, true},
		{"twenty five", 25, true},
		{"Forty-Two", 42, true},
		{"ninety", 90, true},
		{"ninety nine", 99, true},
		{"banana", 0, false},
		{"twenty-twelve", 0, false},
		{"five twenty", 0, false},
		{"", 0, false},
		{"one two three", 0, false},
	}
	for _, tc := range cases {
		got, ok := wordToNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("wordToNumber(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
