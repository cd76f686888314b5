package entity

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Hello, World!", want: "hello-world"},
		{title: "  A   B  ", want: "a---b"},
		{title: "Already-Slugged", want: "already-slugged"},
		{title: "Go 1.25 Release Notes", want: "go-125-release-notes"},
		{title: "日本語タイトル", want: ""},
		{title: "", want: ""},
		{title: "UPPER lower 42", want: "upper-lower-42"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
