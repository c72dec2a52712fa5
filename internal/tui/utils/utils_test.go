package utils

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "Inbox", width: 10, want: "Inbox"},
		{name: "exact", in: "Inbox", width: 5, want: "Inbox"},
		{name: "cut", in: "Groceries", width: 6, want: "Groce…"},
		{name: "wide runes", in: "日本語テキスト", width: 7, want: "日本語…"},
		{name: "zero width", in: "x", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.width); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight should not cut, got %q", got)
	}
}

func TestFitLines(t *testing.T) {
	if got := FitLines("a\nb\nc", 2); got != "a\nb" {
		t.Errorf("FitLines cut = %q", got)
	}
	if got := FitLines("a", 3); got != "a\n\n" {
		t.Errorf("FitLines pad = %q", got)
	}
	if got := FitLines("a", 0); got != "" {
		t.Errorf("FitLines zero = %q", got)
	}
}

func TestPlaceOverlay(t *testing.T) {
	bg := "aaaaaaaa\nbbbbbbbb\ncccccccc"

	tests := []struct {
		name string
		x, y int
		fg   string
		want string
	}{
		{name: "middle", x: 2, y: 1, fg: "XY", want: "aaaaaaaa\nbbXYbbbb\ncccccccc"},
		{name: "ragged block", x: 0, y: 0, fg: "XYZ\nQ", want: "XYZaaaaa\nQ  bbbbb\ncccccccc"},
		{name: "clipped below", x: 6, y: 2, fg: "12\n34", want: "aaaaaaaa\nbbbbbbbb\ncccccc12"},
		{name: "past line end", x: 10, y: 0, fg: "Z", want: "aaaaaaaa  Z\nbbbbbbbb\ncccccccc"},
		{name: "empty", x: 1, y: 1, fg: "", want: bg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlaceOverlay(tt.x, tt.y, tt.fg, bg); got != tt.want {
				t.Errorf("PlaceOverlay() = %q, want %q", got, tt.want)
			}
		})
	}
}
