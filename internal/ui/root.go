// Package ui hosts the full-screen bubbletea program: the root model that
// acts as the navigation layout, plus the widgets screens are built from.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"

	"skiddie/internal/nav"
)

// ErrInterrupted is returned by Run when the player pressed ctrl+c.
var ErrInterrupted = errors.New("ui interrupted")

// ExitMsg stops the program; Run returns Result.
type ExitMsg struct {
	Result any
}

func Exit(result any) tea.Cmd {
	return func() tea.Msg { return ExitMsg{Result: result} }
}

type animateMsg time.Time

// Sizer is implemented by containers that lay themselves out to the window.
type Sizer interface {
	SetSize(width, height int)
}

type Options struct {
	Theme  Theme
	Debug  bool
	Motion string
	Input  io.Reader
	Output io.Writer
	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool
}

type Root struct {
	theme  Theme
	motion string
	opts   Options

	mu      sync.Mutex
	program *tea.Program
	running bool

	nav      *nav.Navigator
	root     nav.Container
	floats   []nav.Container
	focus    int
	attached []nav.Container

	cols int
	rows int

	help       help.Model
	keymap     rootKeyMap
	logger     *clog.Logger
	spring     harmonica.Spring
	overlayPos float64
	overlayVel float64

	result any
	err    error
}

// New builds the root and displays def as the first screen.
func New(opts Options, def nav.Screen) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "skiddie-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}
	motion := normalizeMotionLevel(opts.Motion)
	spring := harmonica.NewSpring(harmonica.FPS(60), 10.0, 0.8)
	switch motion {
	case "reduced":
		spring = harmonica.NewSpring(harmonica.FPS(30), 9.0, 0.92)
	case "off":
		spring = harmonica.NewSpring(harmonica.FPS(60), 1000.0, 1.0)
	}
	h := help.New()
	h.Styles.ShortKey = opts.Theme.Accent
	h.Styles.ShortDesc = opts.Theme.Muted
	h.Styles.FullKey = opts.Theme.Accent
	h.Styles.FullDesc = opts.Theme.Muted

	r := &Root{
		theme:      opts.Theme,
		motion:     motion,
		opts:       opts,
		focus:      -1,
		cols:       80,
		rows:       24,
		help:       h,
		keymap:     newRootKeyMap(),
		logger:     logger,
		spring:     spring,
		overlayPos: 1,
	}
	r.nav = nav.New(r, def)
	return r
}

// Navigator exposes the history for inspection.
func (r *Root) Navigator() *nav.Navigator {
	return r.nav
}

func (r *Root) SetRoot(c nav.Container) {
	r.root = c
	r.attached = append(r.attached, c)
}

func (r *Root) AddFloat(c nav.Container) {
	r.floats = append(r.floats, c)
	r.attached = append(r.attached, c)
	if r.motion != "off" {
		r.overlayPos, r.overlayVel = 0, 0
	}
}

func (r *Root) ClearFloats() {
	r.floats = nil
	r.focus = -1
}

func (r *Root) Focus(c nav.Container) {
	if c == r.root {
		r.focus = -1
		return
	}
	for i, f := range r.floats {
		if f == c {
			r.focus = i
			return
		}
	}
}

func (r *Root) focused() nav.Container {
	if r.focus >= 0 && r.focus < len(r.floats) {
		return r.floats[r.focus]
	}
	return r.root
}

func (r *Root) setFocused(c nav.Container) {
	if r.focus >= 0 && r.focus < len(r.floats) {
		r.floats[r.focus] = c
		return
	}
	r.root = c
}

// flushAttached sizes and initializes containers attached since the last call.
func (r *Root) flushAttached() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range r.attached {
		if s, ok := c.(Sizer); ok {
			s.SetSize(r.cols, r.bodyRows())
		}
		cmds = append(cmds, c.Init())
	}
	r.attached = nil
	if len(r.floats) > 0 && r.shouldAnimate() {
		cmds = append(cmds, animateTickCmd())
	}
	return tea.Batch(cmds...)
}

func (r *Root) bodyRows() int {
	return max(1, r.rows-1)
}

func (r *Root) Init() tea.Cmd {
	return r.flushAttached()
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	if handled, err := r.nav.Handle(msg); handled {
		if err != nil {
			r.logger.Error("ui.navigation_failed", "err", err, "depth", r.nav.Depth())
			r.err = err
			return r, tea.Quit
		}
		return r, r.flushAttached()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols, r.rows = msg.Width, msg.Height
		r.help.Width = msg.Width
		for _, c := range append([]nav.Container{r.root}, r.floats...) {
			if s, ok := c.(Sizer); ok {
				s.SetSize(r.cols, r.bodyRows())
			}
		}
		return r, nil
	case ExitMsg:
		r.result = msg.Result
		return r, tea.Quit
	case animateMsg:
		r.overlayPos, r.overlayVel = r.spring.Update(r.overlayPos, r.overlayVel, 1.0)
		if r.shouldAnimate() {
			return r, animateTickCmd()
		}
		r.overlayPos, r.overlayVel = 1, 0
		return r, nil
	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return r, r.route(msg)
}

func (r *Root) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keymap.Interrupt):
		r.err = ErrInterrupted
		return r, tea.Quit
	case key.Matches(msg, r.keymap.Quit):
		return r, tea.Quit
	case key.Matches(msg, r.keymap.Help):
		r.help.ShowAll = !r.help.ShowAll
		return r, nil
	case key.Matches(msg, r.keymap.Back):
		if len(r.floats) > 0 {
			return r, nav.ClearFloating
		}
		if r.nav.Depth() > 1 {
			return r, nav.Back
		}
		return r, nil
	}
	return r, r.route(msg)
}

// route delivers msg to the focused container only.
func (r *Root) route(msg tea.Msg) tea.Cmd {
	c := r.focused()
	if c == nil {
		return nil
	}
	next, cmd := c.Update(msg)
	r.setFocused(next)
	return cmd
}

func (r *Root) View() (view string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			view = r.theme.Fail.Render(trimForWidth("UI recovered from a rendering panic. Check logs.", max(1, r.cols-1)))
		}
	}()

	base := ""
	if r.root != nil {
		base = r.root.View()
	}
	body := r.bodyRows()
	for i, f := range r.floats {
		overlay := f.View()
		if i == len(r.floats)-1 && r.overlayPos < 0.999 {
			ow, oh := blockSize(overlay)
			settled := (body - min(oh, body)) / 2
			row := settled + int((1-r.overlayPos)*float64(body-settled))
			base = composeOverlayAt(base, overlay, r.cols, body, row, (r.cols-min(ow, r.cols))/2)
			continue
		}
		base = composeOverlay(base, overlay, r.cols, body)
	}
	return base + "\n" + trimForWidth(r.help.View(r.keymap), r.cols)
}

// Run starts the program and blocks until a screen exits, the player quits
// or ctx is cancelled. The result is whatever was passed to Exit.
func (r *Root) Run(ctx context.Context) (any, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil, errors.New("ui already running")
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.opts.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if r.opts.Input != nil {
		opts = append(opts, tea.WithInput(r.opts.Input))
	}
	if r.opts.Output != nil {
		opts = append(opts, tea.WithOutput(r.opts.Output))
	}
	p := tea.NewProgram(r, opts...)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	}
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, ErrInterrupted
		}
		return nil, err
	}
	return r.result, r.err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) shouldAnimate() bool {
	if r.motion == "off" {
		return false
	}
	return r.overlayPos < 0.999 || abs(r.overlayVel) > 0.001
}

func animateTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return animateMsg(t) })
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func normalizeMotionLevel(v string) string {
	switch strings.TrimSpace(v) {
	case "off", "reduced", "full":
		return strings.TrimSpace(v)
	default:
		return "full"
	}
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic_recovered",
		"where", where,
		"panic", fmt.Sprintf("%v", recovered),
		"messageType", msgType,
		"depth", r.nav.Depth(),
		"floating", r.nav.FloatingCount(),
		"cols", r.cols,
		"rows", r.rows,
		"stack", string(debug.Stack()),
	)
}

var (
	_ tea.Model  = (*Root)(nil)
	_ nav.Layout = (*Root)(nil)
)
