package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/pick"
	"github.com/katalvlaran/pathgrid/render/term"
	"github.com/katalvlaran/pathgrid/scene"
)

// Rows below the canvas: status and key help.
const statusLines = 2

var (
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// newPlayCmd creates the play command: a full-screen terminal view where
// the mouse picks endpoints.
func newPlayCmd(ro *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Pick endpoints with the mouse in an interactive terminal view",
		Long: `Left click selects the start node, right click the end node; the shortest
path is recomputed on every click. = or + zooms in, - zooms out, r or 0
resets the zoom, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.load(cmd)
			if err != nil {
				return err
			}
			g, err := buildGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			s := scene.New(g,
				scene.WithPicker(pick.NewIndexed(g, cfg.View.Tolerance)),
				scene.WithLogger(loggerFromContext(cmd.Context())),
			)
			m := newPlayModel(s, cfg.Viewport())
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			_, err = p.Run()
			return err
		},
	}
}

// playModel is the bubbletea model of the play command. The viewport is
// measured in terminal cells; one cell is one viewport pixel.
type playModel struct {
	scene  *scene.Scene
	camera *scene.Camera
	canvas *term.Canvas
	now    func() time.Time
	last   time.Time
	err    error
}

func newPlayModel(s *scene.Scene, vp pick.Viewport) playModel {
	m := playModel{
		scene:  s,
		camera: scene.NewCamera(vp),
		canvas: term.New(vp),
		now:    time.Now,
	}
	m.last = m.now()
	_, m.err = s.FindPath()

	return m
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := m.now()
	m.camera.Advance(now.Sub(m.last))
	m.last = now

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "=", "+":
			m.camera.ZoomIn()
		case "-":
			m.camera.ZoomOut()
		case "r", "0":
			m.camera.Reset()
		}
	case tea.MouseMsg:
		in := scene.Input{Viewport: m.camera.Viewport()}
		in.X, in.Y = term.CellCenter(msg.X, msg.Y)
		if msg.Action == tea.MouseActionPress {
			in.Left = msg.Button == tea.MouseButtonLeft
			in.Right = msg.Button == tea.MouseButtonRight
		}
		err := m.scene.Update(in)
		if in.Left || in.Right {
			m.err = err
		}
	case tea.WindowSizeMsg:
		h := msg.Height - statusLines
		if h < 1 {
			h = 1
		}
		m.camera.Resize(msg.Width, h)
	}

	return m, nil
}

func (m playModel) View() string {
	m.canvas.Viewport = m.camera.Viewport()

	var b strings.Builder
	b.WriteString(m.canvas.Draw(m.scene.Snapshot()))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("left click start · right click end · =/- zoom · r reset · q quit"))

	return b.String()
}

// status describes the current endpoints and path.
func (m playModel) status() string {
	g := m.scene.Graph()
	head := fmt.Sprintf("start %d  end %d  zoom %.3g", g.Start(), g.End(), m.camera.Viewport().Zoom)
	switch {
	case errors.Is(m.err, dijkstra.ErrNoPath):
		return styleStatus.Render(head) + "  " + styleError.Render("no path")
	case m.err != nil:
		return styleStatus.Render(head) + "  " + styleError.Render(m.err.Error())
	default:
		return styleStatus.Render(fmt.Sprintf("%s  hops %d  cost %g", head, m.scene.Result().Hops(), m.scene.Result().Cost))
	}
}
