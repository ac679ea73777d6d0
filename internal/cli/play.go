package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI with a live cube net.

Keyboard shortcuts:
  f/b/r/l/u/d - Turn the face currently at that side of the view
                (hold shift for counter-clockwise)
  arrow keys  - Orbit the cube
  s           - Scramble
  v           - Solve (unwinds your move history)
  x           - Reset to solved
  q/Esc       - Quit

Drag with the mouse across the net area to rotate layers directly.
Every committed move is stored in the session database.`,
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

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time

const frameInterval = 33 * time.Millisecond

// Model
type playModel struct {
	sim *cubesim.Simulator

	// Database
	db        *storage.DB
	sessions  *storage.SessionRepository
	movesRepo *storage.MoveRepository
	sessionID string
	pending   []storage.TimedMove

	// Timing
	lastTick time.Time

	// UI
	width    int
	height   int
	err      error
	quitting bool

	// Logging
	logger  *SessionLogger
	logPath string
}

func newPlayModel(db *storage.DB) (*playModel, error) {
	sessions := storage.NewSessionRepository(db)
	sessionID, err := sessions.Create("", "")
	if err != nil {
		return nil, err
	}

	// Create logger and start logging
	logger := NewSessionLogger()
	homeDir, _ := os.UserHomeDir()
	logDir := filepath.Join(homeDir, ".cubesim", "logs")
	if err := logger.Start(logDir); err != nil {
		// Log error but continue - logging is optional
		fmt.Printf("Warning: could not start logging: %v\n", err)
	}
	logger.SetSessionID(sessionID)

	m := &playModel{
		sim: cubesim.New(
			cubesim.WithAnimationDuration(200*time.Millisecond),
			cubesim.WithDragThreshold(2),
		),
		db:        db,
		sessions:  sessions,
		movesRepo: storage.NewMoveRepository(db),
		sessionID: sessionID,
		lastTick:  time.Now(),
		logger:    logger,
	}

	m.sim.OnMove(func(mv cubesim.Move) {
		m.pending = append(m.pending, storage.TimedMove{Move: mv, Time: time.Now()})
		m.logger.LogMove(mv)
	})
	m.sim.OnStatus(func(status string) {
		m.logger.LogStatus(status)
	})

	return m, nil
}

func (m *playModel) Init() tea.Cmd {
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
		if m.logger != nil {
			m.logger.LogKeyPress(msg.String())
		}

		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.finish()
			return m, tea.Quit

		case "s":
			m.sim.Scramble()

		case "v":
			m.sim.Solve()

		case "x":
			m.sim.Reset()

		case "up":
			m.sim.OrbitView(0, -0.2)
		case "down":
			m.sim.OrbitView(0, 0.2)
		case "left":
			m.sim.OrbitView(-0.2, 0)
		case "right":
			m.sim.OrbitView(0.2, 0)

		case "f", "b", "r", "l", "u", "d":
			if !m.sim.Busy() {
				m.sim.HandleKey(key, false)
			}

		case "F", "B", "R", "L", "U", "D":
			if !m.sim.Busy() {
				m.sim.HandleKey(strings.ToLower(key), true)
			}
		}

	case tea.MouseMsg:
		if m.sim.Busy() {
			break
		}
		x := float64(msg.X)
		y := float64(msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.sim.PointerDown(0, x, y)
			}
		case tea.MouseActionMotion:
			m.sim.PointerMove(0, x, y)
		case tea.MouseActionRelease:
			m.sim.PointerUp(0)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The picking camera works in cell units; keep it matched to the
		// terminal size.
		cam := m.sim.Camera()
		cam.Width = float64(msg.Width)
		cam.Height = float64(msg.Height)

	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		m.sim.Update(dt)
		return m, m.tickCmd()
	}

	return m, nil
}

// finish flushes pending moves and closes out the database session.
func (m *playModel) finish() {
	if len(m.pending) > 0 {
		if err := m.movesRepo.CreateBatch(m.sessionID, m.pending, 0); err != nil {
			m.err = err
		}
		m.pending = nil
	}
	if err := m.sessions.End(m.sessionID, m.sim.IsSolved()); err != nil {
		m.err = err
	}
	if m.logger != nil {
		m.logPath = m.logger.FilePath()
		m.logger.Close()
	}
}

func (m *playModel) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		msg += fmt.Sprintf("Session saved: %s\n", m.sessionID[:8])
		if m.logPath != "" {
			msg += fmt.Sprintf("Log saved to: %s\n", m.logPath)
		}
		return msg
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("Cube Simulator"))
	b.WriteString("\n\n")

	// Net
	b.WriteString(renderNet(m.sim.Facelets()))
	b.WriteString("\n")

	// Status
	status := m.sim.Status()
	if status == cubesim.StatusSolved || status == cubesim.StatusAlreadySolved {
		b.WriteString(solvedStyle.Render(status))
	} else {
		b.WriteString(statusStyle.Render(status))
	}
	b.WriteString("\n")

	// View mapping: which face each key currently turns
	mapping := m.sim.ViewMapping()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"View: f=%s b=%s r=%s l=%s u=%s d=%s",
		mapping[cubesim.RelFront], mapping[cubesim.RelBack],
		mapping[cubesim.RelRight], mapping[cubesim.RelLeft],
		mapping[cubesim.RelUp], mapping[cubesim.RelDown])))
	b.WriteString("\n")

	// Move history tail
	history := m.sim.History().Moves()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(history)))
	if len(history) > 0 {
		start := 0
		prefix := ""
		if len(history) > 20 {
			start = len(history) - 20
			prefix = "... "
		}
		var notations []string
		for i := start; i < len(history); i++ {
			notations = append(notations, history[i].Notation())
		}
		b.WriteString(prefix)
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	// Error
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Help
	help := "Keys: f/b/r/l/u/d=turn (shift=ccw)  arrows=orbit  s=scramble  v=solve  x=reset  q=quit"
	if m.sim.Busy() {
		help = "Working... controls return when the sequence finishes"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Open database
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	model, err := newPlayModel(db)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
