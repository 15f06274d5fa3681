package app

import (
	"strings"
)

// View renders one frame: fresh glyph blocks for the current time and date,
// the cached weather line, and the computed plan painted into a full
// width-by-height grid so every cell from the previous frame is overwritten.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	clock := m.clockFont.Render(m.now.Format(clockFormat))
	date := m.dateFont.Render(strings.ToUpper(m.now.Format(dateFormat)))
	seconds := m.now.Format(secondsFormat)

	vp := viewport{width: m.width, height: m.height, ratio: m.cfg.ViewportRatio}
	frame := layoutFrame(
		clock,
		date,
		seconds,
		weatherStyle.Render(m.cache.CurrentText()),
		hintStyle.Render(m.keys.quitHint()),
		vp,
	)

	return paintPlan(frame, m.width, m.height)
}
