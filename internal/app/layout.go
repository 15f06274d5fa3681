// layout.go computes where every piece of frame content lands on screen.
//
// The dashboard draws into the top viewport-ratio fraction of the terminal:
// the clock block left-aligned, the date block right-aligned, plain-text
// seconds between them on the clock's bottom row, the weather line below the
// block pair, and a quit hint in the bottom-right corner of the usable
// region. When the usable area cannot fit the blocks, layout degrades to a
// single centered message instead of failing; the degraded path is a
// first-class branch, not an error.
//
// All placement decisions happen here, once per frame, so painting is a
// mechanical walk over the returned plan and every rule is unit-testable
// without a terminal.
package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/clock-dash/internal/glyph"
)

// viewport describes the drawable region for one frame. Terminal dimensions
// are re-read every frame, so a resize is picked up on the next tick.
type viewport struct {
	width  int
	height int
	ratio  float64
}

// usableHeight returns how many rows, from the top, the dashboard may draw
// glyph content into: floor(height*ratio), never below one row and never
// beyond the terminal itself.
func (v viewport) usableHeight() int {
	usable := int(float64(v.height) * v.ratio)
	if usable < 1 {
		usable = 1
	}
	if usable > v.height {
		usable = v.height
	}
	return usable
}

// placement positions one line of text at a row/column cell coordinate.
type placement struct {
	row  int
	col  int
	text string
}

// plan is the set of placements for one frame plus the degraded-space flag.
type plan struct {
	placements []placement
	degraded   bool
}

// layoutFrame lays out one frame.
//
// clock and date are the pre-rendered glyph blocks; seconds, weatherLine and
// header are plain (possibly styled) single-line strings. The returned plan
// never places clock, date, seconds, or the degraded message on a row at or
// below the usable height; the weather line may sit just below the viewport
// boundary but never overlaps the blocks.
func layoutFrame(clock, date glyph.Block, seconds, weatherLine, header string, vp viewport) plan {
	usable := vp.usableHeight()

	requiredWidth := clock.Width() + MinBlockGap + date.Width()
	requiredHeight := clock.Height()
	if date.Height() > requiredHeight {
		requiredHeight = date.Height()
	}

	if vp.width <= 0 || vp.height <= 0 ||
		clock.Empty() || date.Empty() ||
		vp.width < requiredWidth || usable < requiredHeight {
		return degradedPlan(vp, usable)
	}

	var placements []placement

	// Clock left-aligned at column 0, top-aligned; rows at or below the
	// viewport boundary are clipped, never painted.
	clockRows := clipRows(clock.Height(), usable, vp.height)
	for i := 0; i < clockRows; i++ {
		placements = append(placements, placement{row: i, col: 0, text: clock.Lines()[i]})
	}

	// Date right-aligned so its last column is the terminal's last column.
	dateCol := vp.width - date.Width()
	dateRows := clipRows(date.Height(), usable, vp.height)
	for i := 0; i < dateRows; i++ {
		placements = append(placements, placement{row: i, col: dateCol, text: date.Lines()[i]})
	}

	// Seconds go on the clock's bottom drawn row, immediately right of the
	// block. If the gap between the blocks cannot hold them, they are
	// dropped rather than overlapped: partial content beats no content.
	secCol := clock.Width()
	if clockRows > 0 && secCol+lipgloss.Width(seconds) <= dateCol {
		placements = append(placements, placement{row: clockRows - 1, col: secCol, text: seconds})
	}

	blockBottom := max(clockRows, dateRows) - 1

	// Weather sits below the block pair with one blank row of separation.
	// It may extend just past the viewport boundary but never off-screen.
	weatherRow := blockBottom + WeatherRowOffset
	if weatherLine != "" && weatherRow < vp.height {
		placements = append(placements, placement{row: weatherRow, col: 0, text: truncate(weatherLine, vp.width)})
	}

	// Quit hint in the bottom-right corner of the usable region, only when
	// that row is free of blocks and weather.
	headerRow := usable - 1
	headerCol := vp.width - lipgloss.Width(header) - 1
	if header != "" && headerRow > blockBottom && headerRow != weatherRow && headerCol >= 0 {
		placements = append(placements, placement{row: headerRow, col: headerCol, text: header})
	}

	return plan{placements: placements}
}

// degradedPlan produces the fallback for terminals too small for the glyph
// layout: exactly one centered line of plain text, and nothing else.
func degradedPlan(vp viewport, usable int) plan {
	if vp.width <= 0 || vp.height <= 0 {
		return plan{degraded: true}
	}

	text := truncate(tooSmallMessage, vp.width)
	row := (usable - 1) / 2
	if row >= vp.height {
		row = vp.height - 1
	}
	col := (vp.width - lipgloss.Width(text)) / 2
	if col < 0 {
		col = 0
	}
	return plan{
		placements: []placement{{row: row, col: col, text: text}},
		degraded:   true,
	}
}

// clipRows bounds a block's drawn row count by the viewport and the terminal.
func clipRows(blockHeight, usable, terminalHeight int) int {
	rows := blockHeight
	if rows > usable {
		rows = usable
	}
	if rows > terminalHeight {
		rows = terminalHeight
	}
	return rows
}

// paintPlan composes the plan into a full-screen frame string. Placements
// are sorted into row/column order, each row is assembled by cell-width
// padding, and the result is normalized to exactly width x height so every
// previous frame cell is overwritten.
func paintPlan(p plan, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	ordered := make([]placement, len(p.placements))
	copy(ordered, p.placements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].row != ordered[j].row {
			return ordered[i].row < ordered[j].row
		}
		return ordered[i].col < ordered[j].col
	})

	rows := make([]string, height)
	for _, pl := range ordered {
		if pl.row < 0 || pl.row >= height {
			continue
		}
		pad := pl.col - lipgloss.Width(rows[pl.row])
		if pad < 0 {
			// Overlapping placement; layout never produces one, skip it.
			continue
		}
		rows[pl.row] = rows[pl.row] + strings.Repeat(" ", pad) + pl.text
	}

	for i := range rows {
		rows[i] = truncate(rows[i], width)
	}
	return padBlock(strings.Join(rows, "\n"), width, height)
}
