package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive animated cube",
	Long: `Start an interactive TUI with an animated cube.

Keyboard shortcuts:
  r/l/u/d/f/b - Turn a face clockwise (shift for counter-clockwise)
  m/e         - Turn the middle/equator slice
  s           - Shuffle
  x           - Reset to solved
  t           - Toggle whole-cube spin
  1/2/3       - Spin axis preset (x, y, z)
  +/-         - Rotation speed up/down
  [/]         - Shuffle speed down/up
  q/Esc       - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

// frameInterval paces the animation loop at roughly 30 fps.
const frameInterval = 33 * time.Millisecond

// maxFrameDt caps the simulated step when the terminal stalls, so a
// suspended session does not fast-forward the whole queue in one tick.
const maxFrameDt = 0.25

// faceKeys maps a face key press to its move. Lowercase is clockwise,
// uppercase counter-clockwise.
var faceKeys = map[string]cubesim.Move{
	"r": cubesim.R, "R": cubesim.RPrime,
	"l": cubesim.L, "L": cubesim.LPrime,
	"u": cubesim.U, "U": cubesim.UPrime,
	"d": cubesim.D, "D": cubesim.DPrime,
	"f": cubesim.F, "F": cubesim.FPrime,
	"b": cubesim.B, "B": cubesim.BPrime,
	"m": cubesim.M, "M": cubesim.MPrime,
	"e": cubesim.E, "E": cubesim.EPrime,
}

// Model
type playModel struct {
	sim     *cubesim.Sim
	initial []cubesim.Move // moves played on startup (replay mode)

	lastTick time.Time
	done     []string // notation of completed moves, newest last

	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(sim *cubesim.Sim, initial []cubesim.Move) *playModel {
	m := &playModel{sim: sim, initial: initial}
	sim.OnMoveComplete(func(mv cubesim.Move) {
		m.done = append(m.done, mv.Notation())
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	if len(m.initial) > 0 {
		m.sim.Play(m.initial...)
	}
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			m.sim.Shuffle()

		case "x":
			if err := m.sim.Reset(); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.done = nil
			}

		case "t":
			m.sim.SetSpinning(!m.sim.Spinning())

		case "1":
			m.sim.SetSpinPreset("x")
		case "2":
			m.sim.SetSpinPreset("y")
		case "3":
			m.sim.SetSpinPreset("z")

		case "+", "=":
			m.sim.SetRotationSpeed(m.sim.RotationSpeed() + 0.1)
		case "-":
			m.sim.SetRotationSpeed(m.sim.RotationSpeed() - 0.1)

		case "[":
			m.sim.SetShuffleSpeed(m.sim.ShuffleSpeed() - 0.1)
		case "]":
			m.sim.SetShuffleSpeed(m.sim.ShuffleSpeed() + 0.1)

		default:
			if mv, ok := faceKeys[key]; ok {
				m.sim.Play(mv)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
		m.sim.Advance(dt)
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cubesim"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.sim.Facelets()))
	b.WriteString("\n")

	// Engine and queue status
	engine := m.sim.Engine()
	status := fmt.Sprintf("State: %s", engine.State())
	if engine.Active() {
		status += fmt.Sprintf("  Move: %s", engine.Move().Notation())
	}
	if n := m.sim.Queue().Len(); n > 0 {
		status += fmt.Sprintf("  Queued: %d", n)
	}
	b.WriteString(stateStyle.Render(status))
	b.WriteString("\n")

	spin := "off"
	if m.sim.Spinning() {
		spin = axisLabel(m.sim.SpinAxis())
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"Speed: %.1fx  Shuffle speed: %.1fx  Spin: %s",
		m.sim.RotationSpeed(), m.sim.ShuffleSpeed(), spin)))
	b.WriteString("\n")

	if m.sim.IsSolved() {
		b.WriteString(stateStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	// Recent completed moves
	if len(m.done) > 0 {
		b.WriteString("\nMoves: ")
		start := 0
		if len(m.done) > 20 {
			start = len(m.done) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(strings.Join(m.done[start:], " ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: r/l/u/d/f/b=turn (shift=ccw) m/e=slice s=shuffle x=reset t=spin 1/2/3=axis +/-=speed [/]=shuffle speed q=quit"))
	b.WriteString("\n")

	return b.String()
}

func axisLabel(axis cubesim.Vec3) string {
	for name, v := range cubesim.SpinPresets {
		if v == axis {
			return name
		}
	}
	return fmt.Sprintf("(%.0f,%.0f,%.0f)", axis.X, axis.Y, axis.Z)
}

func runPlay(cmd *cobra.Command, args []string) error {
	sim := cubesim.NewSim(cubesim.WithLogger(getLogger()))
	return runTUI(sim, nil)
}

// runTUI starts the interactive program, optionally with moves to play
// on startup.
func runTUI(sim *cubesim.Sim, initial []cubesim.Move) error {
	model := newPlayModel(sim, initial)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
