package app

import "time"

// Timing constants control the render loop cadence
const (
	// TickInterval bounds input polling and sets the clock's effective
	// resolution. It must stay at or below one second so the seconds
	// display visibly advances every second.
	TickInterval = 250 * time.Millisecond
)

// Layout constants define spacing within the dashboard viewport
const (
	// MinBlockGap is the minimum clearance, in columns, required between
	// the clock block and the date block.
	MinBlockGap = 1

	// WeatherRowOffset is how many rows below the bottom of the block pair
	// the weather line is drawn (one blank row in between).
	WeatherRowOffset = 2
)

// Time formats for the three displayed strings
const (
	clockFormat   = "15:04"
	secondsFormat = ":05"
	dateFormat    = "02 Jan" // uppercased to e.g. "28 JAN"
)

// tooSmallMessage is the single centered line shown when the usable area
// cannot fit the glyph blocks.
const tooSmallMessage = "Terminal too small"
