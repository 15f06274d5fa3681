// Package app drives the clock dashboard: a Bubble Tea render loop that
// repaints a large glyph clock and date every tick, constrained to the top
// fraction of the terminal, with a one-line weather summary refreshed on its
// own interval off the tick path.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/clock-dash/internal/config"
	"github.com/treykane/clock-dash/internal/glyph"
	"github.com/treykane/clock-dash/internal/weather"
)

// tickMsg is emitted by the tick timer; it carries the wall-clock time the
// frame is rendered for.
type tickMsg time.Time

// weatherResultMsg delivers the outcome of a background weather fetch back
// into the update loop.
type weatherResultMsg struct {
	text string
	err  error
}

// Model holds the Bubble Tea state for the dashboard.
type Model struct {
	cfg  config.Config
	keys keyMap

	// Glyph renderers, one per font, validated at startup.
	clockFont *glyph.Renderer
	dateFont  *glyph.Renderer

	// Weather state: the cache is the single process-wide cell, mutated
	// only when a fetch completes, read on every frame.
	cache  *weather.Cache
	client *weather.Client

	// Per-frame snapshot of the wall clock.
	now time.Time

	// Terminal dimensions, updated on every resize.
	width  int
	height int
}

// New builds the model from startup configuration. A missing glyph font is
// a fatal configuration error reported here, before the loop starts.
func New(cfg config.Config) (*Model, error) {
	clockFont, err := glyph.New(cfg.ClockFont)
	if err != nil {
		return nil, fmt.Errorf("clock font: %w", err)
	}
	dateFont, err := glyph.New(cfg.DateFont)
	if err != nil {
		return nil, fmt.Errorf("date font: %w", err)
	}

	return &Model{
		cfg:       cfg,
		keys:      defaultKeyMap(),
		clockFont: clockFont,
		dateFont:  dateFont,
		cache:     weather.NewCache(cfg.WeatherRefresh),
		client:    weather.NewClient(cfg.WeatherURL, cfg.WeatherTimeout),
		now:       time.Now(),
	}, nil
}

// Init schedules the first tick. The first weather fetch fires on that tick
// because a fresh cache is immediately due.
func (m *Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// scheduleTick queues the next frame. The next tick is always scheduled, so
// the clock keeps running no matter what else happens in a frame.
func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchWeather runs one weather fetch off the render loop's critical path.
// Bubble Tea executes the command on its own goroutine, so a slow or hung
// request never stalls a tick; on quit an in-flight command is simply
// abandoned with the program.
func (m *Model) fetchWeather() tea.Cmd {
	client := m.client
	timeout := m.cfg.WeatherTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := client.Fetch(ctx)
		return weatherResultMsg{text: text, err: err}
	}
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(msg)

	case weatherResultMsg:
		if msg.err != nil {
			appLog.Warn("weather refresh failed", "error", msg.err)
		}
		m.cache.CompleteRefresh(msg.text, msg.err, time.Now())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleTick advances the clock snapshot, kicks off a weather refresh when
// one is due (at most one in flight), and always schedules the next tick.
func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	m.now = time.Time(msg)

	if m.cache.BeginRefresh(m.now) {
		return m, tea.Batch(m.fetchWeather(), m.scheduleTick())
	}
	return m, m.scheduleTick()
}
