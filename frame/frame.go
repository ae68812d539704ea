// Package frame provides the ambient page chrome rowkit components share:
// a single-slot contextual save bar and a loading indicator. Screens set
// the save bar on mount and release it on unmount; the loading indicator
// is a start/stop pair backed by an internal counter, or delegated to a
// host-platform bridge when one is supplied.
package frame

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"

	"github.com/wilbur182/rowkit/locale"
	"github.com/wilbur182/rowkit/styles"
)

// Bridge is a host-platform loading indicator. When a frame has one,
// start/stop calls are forwarded instead of counted and the frame draws
// no indicator of its own.
type Bridge interface {
	StartLoading()
	StopLoading()
}

// Button is one save-bar action.
type Button struct {
	Label    string
	OnAction func() tea.Cmd
}

// SaveBar describes the contextual save bar.
type SaveBar struct {
	Message   string
	Save      Button
	Discard   Button
	FullWidth bool
}

// Frame coordinates the shared chrome. Methods are called from the
// bubbletea event loop; the loading counter alone is safe to touch from
// command goroutines.
type Frame struct {
	loc    *locale.Localizer
	logger *slog.Logger
	bridge Bridge

	loading *atomic.Int64
	spin    spinner.Model

	saveBar   *SaveBar
	saveEpoch uint64
}

// Option configures a Frame.
type Option func(*Frame)

// WithBridge delegates the loading indicator to a host platform.
func WithBridge(b Bridge) Option {
	return func(f *Frame) { f.bridge = b }
}

// WithLogger attaches a logger for chrome lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Frame) { f.logger = logger }
}

// WithLocalizer overrides the localizer used for chrome text.
func WithLocalizer(loc *locale.Localizer) Option {
	return func(f *Frame) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// New creates a frame.
func New(opts ...Option) *Frame {
	f := &Frame{
		loc:     locale.Default(),
		loading: atomic.NewInt64(0),
		spin:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// StartLoading begins one unit of loading work. The returned command
// drives the indicator animation and is nil when nothing needs driving
// (bridge present, or already animating).
func (f *Frame) StartLoading() tea.Cmd {
	if f.bridge != nil {
		f.bridge.StartLoading()
		return nil
	}
	if f.loading.Inc() == 1 {
		return f.spin.Tick
	}
	return nil
}

// StopLoading ends one unit of loading work. Unbalanced stops are
// absorbed; the counter never goes negative.
func (f *Frame) StopLoading() {
	if f.bridge != nil {
		f.bridge.StopLoading()
		return
	}
	for {
		cur := f.loading.Load()
		if cur == 0 {
			return
		}
		if f.loading.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// Loading reports whether counted loading work is in flight. Bridged
// frames always report false; the host owns the indicator there.
func (f *Frame) Loading() bool {
	if f.bridge != nil {
		return false
	}
	return f.loading.Load() > 0
}

// SetSaveBar registers the save bar, replacing any current occupant of
// the slot. The returned release function clears the registration and is
// safe to call more than once; a stale release (after somebody else has
// registered) is a no-op, so teardown paths can always call it.
func (f *Frame) SetSaveBar(bar SaveBar) (release func()) {
	if bar.Save.Label == "" {
		bar.Save.Label = f.loc.SaveLabel()
	}
	if bar.Discard.Label == "" {
		bar.Discard.Label = f.loc.DiscardLabel()
	}
	f.saveEpoch++
	epoch := f.saveEpoch
	f.saveBar = &bar
	if f.logger != nil {
		f.logger.Debug("save bar set", "message", bar.Message)
	}
	return func() {
		if f.saveEpoch != epoch {
			return
		}
		f.ClearSaveBar()
	}
}

// ClearSaveBar empties the save-bar slot.
func (f *Frame) ClearSaveBar() {
	if f.saveBar != nil && f.logger != nil {
		f.logger.Debug("save bar cleared")
	}
	f.saveBar = nil
}

// SaveBarVisible reports whether a save bar is registered.
func (f *Frame) SaveBarVisible() bool {
	return f.saveBar != nil
}

// CurrentSaveBar returns the registered save bar, if any.
func (f *Frame) CurrentSaveBar() (SaveBar, bool) {
	if f.saveBar == nil {
		return SaveBar{}, false
	}
	return *f.saveBar, true
}

// Save invokes the save action of the registered bar.
func (f *Frame) Save() tea.Cmd {
	if f.saveBar == nil || f.saveBar.Save.OnAction == nil {
		return nil
	}
	return f.saveBar.Save.OnAction()
}

// Discard invokes the discard action of the registered bar.
func (f *Frame) Discard() tea.Cmd {
	if f.saveBar == nil || f.saveBar.Discard.OnAction == nil {
		return nil
	}
	return f.saveBar.Discard.OnAction()
}

// Update advances the indicator animation.
func (f *Frame) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); ok && f.Loading() {
		var cmd tea.Cmd
		f.spin, cmd = f.spin.Update(msg)
		return cmd
	}
	return nil
}

// View renders the chrome: the loading line (when counted work is in
// flight) above the save bar (when registered). Empty when idle.
func (f *Frame) View(width int) string {
	var lines []string
	if f.Loading() {
		lines = append(lines, styles.LoadingBar.Render(f.spin.View()+" "+f.loc.LoadingLabel()))
	}
	if f.saveBar != nil {
		lines = append(lines, f.renderSaveBar(width))
	}
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

func (f *Frame) renderSaveBar(width int) string {
	bar := f.saveBar
	buttons := styles.DiscardButton.Render(bar.Discard.Label) + " " + styles.SaveButton.Render(bar.Save.Label)
	message := styles.SaveBarMessage.Render(bar.Message)

	if !bar.FullWidth {
		return message + "  " + buttons
	}
	return styles.SaveBar.Width(width).Render(message + "  " + buttons)
}
