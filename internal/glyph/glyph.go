// Package glyph renders short strings as large figlet-style text blocks.
//
// It wraps go-figure behind a small Renderer type so the rest of the
// application deals only in rectangular Blocks of equal-width lines. Font
// availability is validated once at construction; rendering itself never
// fails.
package glyph

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-runewidth"
)

// Block is an ordered sequence of equal-width text lines forming one
// rendered string. Blocks are produced fresh per frame and are immutable
// once built.
type Block struct {
	lines []string
	width int
}

// Lines returns the block's rows, top to bottom.
func (b Block) Lines() []string { return b.lines }

// Width returns the display width shared by every line.
func (b Block) Width() int { return b.width }

// Height returns the number of lines.
func (b Block) Height() int { return len(b.lines) }

// Empty reports whether the block has no visible content.
func (b Block) Empty() bool { return len(b.lines) == 0 }

// Renderer renders text in a single figlet font.
type Renderer struct {
	fontName string
}

// New validates fontName by rendering a probe string and returns a Renderer
// bound to that font. go-figure panics when a bundled font is missing, so the
// probe converts a bad font name into an error exactly once, at startup;
// Render is infallible afterwards.
func New(fontName string) (*Renderer, error) {
	if err := probeFont(fontName); err != nil {
		return nil, err
	}
	return &Renderer{fontName: fontName}, nil
}

func probeFont(fontName string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("font %q unavailable: %v", fontName, r)
		}
	}()
	_ = figure.NewFigure("0", fontName, false).Slicify()
	return nil
}

// Render converts text into a normalized Block: fully blank rows are trimmed
// from the top and bottom, and every remaining line is padded to the same
// display width. Deterministic and side-effect free.
func (r *Renderer) Render(text string) Block {
	fig := figure.NewFigure(text, r.fontName, false)
	return newBlock(fig.Slicify())
}

// FromLines builds a Block from pre-rendered art lines, applying the same
// trim-and-pad normalization as Render.
func FromLines(lines []string) Block {
	return newBlock(lines)
}

// newBlock applies the trim-then-pad normalization pipeline to raw art lines.
func newBlock(raw []string) Block {
	lines := trimBlankBorder(raw)
	if len(lines) == 0 {
		return Block{}
	}

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = line + strings.Repeat(" ", width-runewidth.StringWidth(line))
	}
	return Block{lines: padded, width: width}
}

// trimBlankBorder drops completely blank rows from the top and bottom of the
// art, leaving interior blank rows intact.
func trimBlankBorder(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
