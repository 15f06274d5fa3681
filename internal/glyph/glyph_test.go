package glyph

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestNewRejectsUnknownFont(t *testing.T) {
	if _, err := New("no-such-font"); err == nil {
		t.Fatal("expected error for unknown font")
	}
}

func TestNewAcceptsBundledFonts(t *testing.T) {
	for _, font := range []string{"big", "standard"} {
		t.Run(font, func(t *testing.T) {
			if _, err := New(font); err != nil {
				t.Fatalf("New(%q): %v", font, err)
			}
		})
	}
}

func TestRenderProducesRectangularBlock(t *testing.T) {
	r, err := New("big")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := r.Render("14:32")
	if block.Empty() {
		t.Fatal("expected non-empty block")
	}
	if block.Width() <= 0 || block.Height() <= 0 {
		t.Fatalf("expected positive dimensions, got %dx%d", block.Width(), block.Height())
	}
	for i, line := range block.Lines() {
		if w := runewidth.StringWidth(line); w != block.Width() {
			t.Errorf("line %d: width %d, want %d", i, w, block.Width())
		}
	}
}

func TestRenderTrimsBlankBorderRows(t *testing.T) {
	r, err := New("standard")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := r.Render("28 JAN")
	lines := block.Lines()
	if len(lines) == 0 {
		t.Fatal("expected non-empty block")
	}
	if strings.TrimSpace(lines[0]) == "" {
		t.Error("first line is blank; expected top border trimmed")
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "" {
		t.Error("last line is blank; expected bottom border trimmed")
	}
}

func TestTrimBlankBorder(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "empty", input: nil, want: nil},
		{name: "all blank", input: []string{"", "   "}, want: nil},
		{
			name:  "border trimmed",
			input: []string{"", "  ", "ab", "", "cd", "  "},
			want:  []string{"ab", "", "cd"},
		},
		{
			name:  "no border",
			input: []string{"ab", "cd"},
			want:  []string{"ab", "cd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimBlankBorder(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewBlockPadsToUniformWidth(t *testing.T) {
	block := newBlock([]string{"ab", "a", "abcd"})
	if block.Width() != 4 {
		t.Fatalf("width: got %d, want 4", block.Width())
	}
	for i, line := range block.Lines() {
		if len(line) != 4 {
			t.Errorf("line %d: got %q (len %d), want len 4", i, line, len(line))
		}
	}
}
