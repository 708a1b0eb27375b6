package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/state"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

// Model is the Bubble Tea model for running sketches. It owns the phase
// machine; the sketch itself never sees phases, only input frames.
type Model struct {
	sketch       registry.Sketch
	machine      *state.Machine
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	keyMapper    *KeyMapper
	stats        core.SketchStats
	startedAt    time.Time
	quitting     bool
	backToMenu   bool // Set when a run exits back to the menu phase
	sessionSaved bool // Whether the current run was already journaled
}

// NewModel creates a new Bubble Tea model for the given sketch.
func NewModel(sketch registry.Sketch, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		sketch:     sketch,
		machine:    state.New(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop. The sketch is not reset until the machine
// leaves the menu phase.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input: first the phase machine gets a shot
// at the action, then unconsumed actions flow to the sketch's input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	from := m.machine.Phase()
	to, changed := m.machine.Apply(action)
	if changed {
		m.onTransition(from, to)
		return m, nil
	}

	// Back on the title card leaves the sketch entirely; the machine
	// itself treats Menu+Back as a no-op.
	if action == core.ActionBack && from == state.PhaseMenu {
		m.backToMenu = true
		return m, nil
	}

	// Unmapped transitions are no-ops for the machine; during play the
	// action belongs to the sketch.
	if action != core.ActionNone && m.machine.Phase() == state.PhasePlaying {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// onTransition runs the side effects of a phase change.
func (m *Model) onTransition(from, to state.Phase) {
	switch {
	case to == state.PhasePlaying && from != state.PhasePaused:
		// Fresh run from Menu or Done: reseed so restarts differ.
		m.config.Seed = time.Now().UnixNano()
		m.sketch.Reset(m.config)
		m.stats = m.sketch.Stats()
		m.startedAt = time.Now()
		m.sessionSaved = false
		m.inputFrame.Clear()

	case to == state.PhaseMenu:
		m.saveSession()
		m.backToMenu = true
		m.inputFrame.Clear()
	}
}

// handleMouse forwards pointer presses to the sketch during play.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.machine.Phase() != state.PhasePlaying {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Press(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A running sketch restarts with the new dimensions.
	if m.machine.Phase() == state.PhasePlaying || m.machine.Phase() == state.PhasePaused {
		m.sketch.Reset(m.config)
		m.stats = m.sketch.Stats()
	}

	return m, nil
}

// handleTick advances the simulation. Only the playing phase steps the
// sketch; menu, paused and done phases just keep the loop alive.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.machine.Phase() != state.PhasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.sketch.Step(m.inputFrame)
	m.stats = result.Stats
	m.inputFrame.Clear()

	if result.Stats.Done {
		m.machine.Finish()
		m.saveSession()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveSession journals the finished run once. Best effort: the UI never
// blocks on storage problems.
func (m *Model) saveSession() {
	if m.store == nil || m.sessionSaved || m.stats.Ticks == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, UI continues regardless
	m.store.SaveSession(storage.SessionEntry{
		SketchID:     m.sketch.ID(),
		Ticks:        m.stats.Ticks,
		Spawned:      m.stats.Spawned,
		PeakEntities: m.stats.Peak,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
	m.sessionSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sketch.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sketch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.sketch.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, UI continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.machine.Phase() {
	case state.PhaseMenu:
		m.renderMenuOverlay()
	case state.PhaseDone:
		m.sketch.Render(m.screen)
		m.renderBanner("FINISHED", "R: run again  |  B: menu  |  Q: quit")
	case state.PhasePaused:
		m.sketch.Render(m.screen)
		m.renderBanner("PAUSED", "P: resume  |  B: menu")
	default:
		m.sketch.Render(m.screen)
	}

	return RenderScreen(m.screen)
}

// renderMenuOverlay draws the pre-run title card.
func (m Model) renderMenuOverlay() {
	m.screen.Clear()
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid-2, m.sketch.Title())
	m.screen.DrawTextCentered(mid, "Enter: begin  |  Q: quit")
}

// renderBanner draws a boxed message over the current frame.
func (m Model) renderBanner(title, subtitle string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	m.screen.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	m.screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	m.screen.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	m.screen.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Phase exposes the machine phase for tests and the SSH session wrapper.
func (m Model) Phase() state.Phase {
	return m.machine.Phase()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once a run has exited back to the menu phase.
// The SSH session wrapper uses it to return to the sketch picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(sketch registry.Sketch, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(sketch, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses spawn entities
	)

	_, err := p.Run()
	return err
}
