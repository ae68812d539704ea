package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/rowkit/frame"
	"github.com/wilbur182/rowkit/list"
	"github.com/wilbur182/rowkit/row"
	"github.com/wilbur182/rowkit/styles"
)

type model struct {
	list  *list.Model
	frame *frame.Frame

	releaseSaveBar func()
	status         string
	width          int
}

func newModel(logger *slog.Logger) (*model, error) {
	m := &model{}

	rows := []row.Row{
		{
			ID:    "orders",
			Title: "Orders dashboard",
			Media: "📦",
			URL:   "https://example.com/orders",
			ShortcutActions: []row.Action{
				row.CopyAction("copy-url", "Copy link", "https://example.com/orders"),
				{ID: "archive", Label: "Archive", Disabled: true},
			},
			PersistActions:     true,
			AccessibilityLabel: "Orders dashboard",
		},
		{
			ID:      "customers",
			Title:   "Customers",
			Media:   "👥",
			OnClick: func(id string) { logger.Info("activated", "id", id) },
			ShortcutActions: []row.Action{
				row.CopyAction("copy-name", "Copy name", "Customers"),
			},
		},
		{
			ID:                 "reports",
			Title:              "Monthly report",
			URL:                "https://example.com/reports",
			AccessibilityLabel: "Monthly report",
		},
	}

	l, err := list.New(rows, list.WithSelectable())
	if err != nil {
		return nil, err
	}
	m.list = l
	m.frame = frame.New(frame.WithLogger(logger))
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return m.list.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "l":
			if m.list.Loading() {
				m.list.SetLoading(false)
				m.frame.StopLoading()
				return m, nil
			}
			return m, tea.Batch(m.list.SetLoading(true), m.frame.StartLoading())
		case "ctrl+s":
			return m, m.frame.Save()
		case "ctrl+d":
			return m, m.frame.Discard()
		}

	case themeChangedMsg:
		styles.ApplyThemeColors(msg.theme)
		m.status = "theme reloaded: " + msg.theme.Name
		return m, nil

	case row.NavigateMsg:
		where := "here"
		if msg.NewContext {
			where = "new window"
		}
		m.status = fmt.Sprintf("navigate (%s): %s", where, msg.URL)
		return m, nil

	case savedMsg:
		m.status = "saved"
		return m, nil

	case row.CopiedMsg:
		if msg.Err != nil {
			m.status = "copy failed: " + msg.Err.Error()
		} else {
			m.status = "copied"
		}
		return m, nil
	}

	cmd := m.list.Update(msg)
	m.syncSaveBar()
	return m, tea.Batch(cmd, m.frame.Update(msg))
}

// syncSaveBar keeps the contextual save bar registered exactly while a
// selection exists.
func (m *model) syncSaveBar() {
	selected := m.list.Selected()
	active := selected.IsAll() || selected.Count() > 0
	switch {
	case active && m.releaseSaveBar == nil:
		m.releaseSaveBar = m.frame.SetSaveBar(frame.SaveBar{
			Message:   "Unsaved selection",
			FullWidth: true,
			Save: frame.Button{OnAction: func() tea.Cmd {
				return func() tea.Msg { return savedMsg{} }
			}},
		})
	case !active && m.releaseSaveBar != nil:
		m.releaseSaveBar()
		m.releaseSaveBar = nil
	}
}

type savedMsg struct{}

type themeChangedMsg struct{ theme styles.Theme }

func (m *model) View() string {
	out := m.list.View()
	if chrome := m.frame.View(m.width); chrome != "" {
		out += "\n" + chrome
	}
	if m.status != "" {
		out += "\n" + styles.Muted.Render(m.status)
	}
	out += "\n" + styles.Subtle.Render("space select · v mode · a all · . actions · l loading · q quit")
	return out
}

func main() {
	themePath := flag.String("theme", "", "path to a TOML theme file")
	themeName := flag.String("theme-name", "default", "built-in theme name")
	debug := flag.Bool("debug", false, "log to rowkit-debug.log")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *debug {
		f, err := tea.LogToFile("rowkit-debug.log", "rowkit")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}

	var themes <-chan styles.Theme
	if *themePath != "" {
		theme, err := styles.LoadTheme(*themePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		styles.ApplyThemeColors(theme)

		ch, stop, err := styles.WatchTheme(*themePath, func(err error) {
			logger.Warn("theme reload", "error", err)
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer stop()
		themes = ch
	} else {
		styles.ApplyTheme(*themeName)
	}

	m, err := newModel(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if themes != nil {
		// Applying a theme rewrites shared style state, so reloads are
		// forwarded into the program and applied from its update loop.
		go func() {
			for theme := range themes {
				p.Send(themeChangedMsg{theme: theme})
			}
		}()
	}
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
