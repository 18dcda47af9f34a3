package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/diagviz/internal/diag"
	"github.com/tinytelemetry/diagviz/internal/model"
	"github.com/tinytelemetry/diagviz/internal/visualizer"
)

// DiagnosticsPageID identifies the diagnostics page.
const DiagnosticsPageID = "diagnostics"

// wheelStep is how many rows one wheel notch scrolls.
const wheelStep = 3

// FrameMsg drives one host frame.
type FrameMsg time.Time

// RuntimeMsg carries a runtime statistics sample from the poller.
type RuntimeMsg diag.RuntimeSample

// PageOptions configures a DiagnosticsPage.
type PageOptions struct {
	FrameInterval      time.Duration
	CellWidth          float64
	CellHeight         float64
	ReverseScrollWheel bool
}

// DiagnosticsPage hosts the Diagnostics window in the terminal. Every
// FrameMsg measures the frame, feeds the registry into the visualizer and
// redraws.
type DiagnosticsPage struct {
	vis      *visualizer.Visualizer
	registry *diag.Registry
	frames   *diag.FrameTime
	wave     *diag.Wave

	frameInterval time.Duration
	lastFrame     time.Time
	reverseScroll bool

	layout   *Layout
	viewport viewport.Model
	keys     KeyMap
	help     help.Model

	width  int
	height int
}

// NewDiagnosticsPage creates the page. frames and wave may be nil.
func NewDiagnosticsPage(vis *visualizer.Visualizer, registry *diag.Registry, frames *diag.FrameTime, wave *diag.Wave, opts PageOptions) *DiagnosticsPage {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = model.DefaultFrameInterval
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = model.DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = model.DefaultCellHeight
	}
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle
	return &DiagnosticsPage{
		vis:           vis,
		registry:      registry,
		frames:        frames,
		wave:          wave,
		frameInterval: opts.FrameInterval,
		reverseScroll: opts.ReverseScrollWheel,
		layout:        NewLayout(opts.CellWidth, opts.CellHeight),
		viewport:      viewport.New(80, 20),
		keys:          DefaultKeyMap(),
		help:          h,
	}
}

func (p *DiagnosticsPage) ID() string { return DiagnosticsPageID }

func (p *DiagnosticsPage) Init() tea.Cmd { return p.tick() }

func (p *DiagnosticsPage) tick() tea.Cmd {
	return tea.Tick(p.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Layout exposes the terminal host.
func (p *DiagnosticsPage) Layout() *Layout { return p.layout }

func (p *DiagnosticsPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.refresh()
		return nil, nil

	case FrameMsg:
		p.frame(time.Time(msg))
		return p.tick(), nil

	case RuntimeMsg:
		diag.ApplyRuntime(p.registry, diag.RuntimeSample(msg))
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg), nil

	case tea.MouseMsg:
		p.handleMouse(msg)
		return nil, nil
	}
	return nil, nil
}

// frame advances the host by one frame ending at now.
func (p *DiagnosticsPage) frame(now time.Time) {
	elapsed := p.frameInterval
	if !p.lastFrame.IsZero() {
		elapsed = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
	p.Step(elapsed)
}

// Step runs one frame of the given duration.
func (p *DiagnosticsPage) Step(elapsed time.Duration) {
	if p.frames != nil {
		p.frames.Frame(elapsed)
	}
	if p.wave != nil {
		p.wave.Advance(elapsed)
	}
	p.vis.Update(elapsed, p.registry)
	p.refresh()
}

func (p *DiagnosticsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
	case key.Matches(msg, p.keys.ToggleWindow):
		p.vis.Toggle()
	case key.Matches(msg, p.keys.Up):
		p.moveFocus(-1)
	case key.Matches(msg, p.keys.Down):
		p.moveFocus(1)
	case key.Matches(msg, p.keys.ToggleSection):
		if id := p.layout.Focused(); id != "" {
			p.layout.ToggleSection(id)
		}
	case key.Matches(msg, p.keys.PageUp):
		p.viewport.HalfPageUp()
		return nil
	case key.Matches(msg, p.keys.PageDown):
		p.viewport.HalfPageDown()
		return nil
	case key.Matches(msg, p.keys.Home):
		p.viewport.GotoTop()
		return nil
	case key.Matches(msg, p.keys.ToggleSeries):
		p.toggleFocusedSeries()
	case key.Matches(msg, p.keys.EnableAll):
		p.registry.EnableAll()
	default:
		return nil
	}
	p.refresh()
	return nil
}

func (p *DiagnosticsPage) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	up := msg.Button == tea.MouseButtonWheelUp
	down := msg.Button == tea.MouseButtonWheelDown
	if !up && !down {
		return
	}
	if p.reverseScroll {
		up, down = down, up
	}
	if up {
		p.viewport.ScrollUp(wheelStep)
	} else {
		p.viewport.ScrollDown(wheelStep)
	}
}

// moveFocus moves the highlighted section by delta, clamped to the
// sections drawn in the last frame.
func (p *DiagnosticsPage) moveFocus(delta int) {
	ids := p.layout.Sections()
	if len(ids) == 0 {
		return
	}
	i := slices.Index(ids, p.layout.Focused())
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(ids) - 1
	default:
		i = min(max(i+delta, 0), len(ids)-1)
	}
	p.layout.Focus(ids[i])
}

// toggleFocusedSeries disables (or re-enables) the diagnostic behind the
// focused section. A disabled diagnostic drops out on the next frame.
func (p *DiagnosticsPage) toggleFocusedSeries() {
	id, err := model.ParseSeriesID(p.layout.Focused())
	if err != nil {
		return
	}
	p.registry.Toggle(id)
}

// windowChrome is the rows taken by the border, the title and the help
// line.
const windowChrome = 4

// refresh redraws the window into the layout and sizes the viewport.
func (p *DiagnosticsPage) refresh() {
	p.vis.Render(p.layout)
	if !p.layout.Open() {
		return
	}

	ids := p.layout.Sections()
	if len(ids) > 0 && !slices.Contains(ids, p.layout.Focused()) {
		p.layout.Focus(ids[0])
		p.vis.Render(p.layout)
	}

	rows := p.layout.Rows()
	if p.height > 0 {
		rows = min(rows, max(p.height-windowChrome, 1))
	}
	p.viewport.Width = max(p.width-2, 1)
	p.viewport.Height = rows
	p.viewport.SetContent(p.layout.Content())
	p.keepFocusVisible()
}

func (p *DiagnosticsPage) keepFocusVisible() {
	line, ok := p.layout.HeaderLine(p.layout.Focused())
	if !ok {
		return
	}
	switch {
	case line < p.viewport.YOffset:
		p.viewport.SetYOffset(line)
	case line >= p.viewport.YOffset+p.viewport.Height:
		p.viewport.SetYOffset(line - p.viewport.Height + 1)
	}
}

func (p *DiagnosticsPage) View(width, height int) string {
	if width == 0 || height == 0 {
		return "Initializing..."
	}

	helpLine := p.help.View(p.keys)
	if !p.layout.Open() {
		hint := helpStyle.Render(model.WindowTitle + " window closed (d to open)")
		return lipgloss.JoinVertical(lipgloss.Left, hint, helpLine)
	}

	body := p.viewport.View()
	if len(p.layout.Sections()) == 0 {
		body = renderWaitingPlaceholder(p.viewport.Width, p.viewport.Height, time.Now())
	}
	title := windowTitleStyle.Render(p.layout.Title())
	window := windowStyle.Width(max(width-2, 1)).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	return lipgloss.JoinVertical(lipgloss.Left, window, helpLine)
}
