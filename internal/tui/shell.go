package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry of the bottom navigation bar.
type Tab struct {
	Name string
	Icon string
}

// Tabs are the four navigation destinations, all served by the same screen.
var Tabs = []Tab{
	{Name: "Home", Icon: iconHome},
	{Name: "Explorar", Icon: iconExplore},
	{Name: "Procurar", Icon: iconSearch},
	{Name: "Perfil", Icon: iconPerson},
}

// Screen is a mounted tab body.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	Unmount()
}

// ScreenFactory mounts a fresh screen for a tab.
type ScreenFactory func(tab Tab) Screen

// chromeHeight is the tab bar plus the key help line.
const chromeHeight = 2

// Shell is the navigation shell. Screens have no header chrome; only the
// bottom tab bar and a help line are drawn around them.
//
// Each tab owns at most one screen, mounted on first visit and kept until
// the shell quits. Key and mouse input reach the active screen only; every
// other message (sizes, fetch results) is delivered to all mounted screens.
type Shell struct {
	tabs    []Tab
	active  int
	factory ScreenFactory
	screens []Screen
	keys    keyMap
	help    help.Model
	width   int
	height  int
}

// NewShell mounts the first tab.
func NewShell(factory ScreenFactory) *Shell {
	s := &Shell{
		tabs:    Tabs,
		factory: factory,
		screens: make([]Screen, len(Tabs)),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	s.screens[0] = factory(s.tabs[0])
	return s
}

// NewHomeShell wires the four tabs to the Home screen.
func NewHomeShell(deps HomeDeps) *Shell {
	return NewShell(HomeFactory(deps))
}

// Init starts the first tab's screen.
func (s *Shell) Init() tea.Cmd {
	return s.screens[s.active].Init()
}

// ActiveTab reports the selected tab.
func (s *Shell) ActiveTab() Tab { return s.tabs[s.active] }

// Screen returns the active tab's screen.
func (s *Shell) Screen() Screen { return s.screens[s.active] }

// Update handles tab navigation and quitting, and routes everything else to
// the mounted screens.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = m.Width, m.Height
		s.help.Width = m.Width
		return s, s.broadcast(s.screenSize())
	case tea.KeyMsg:
		switch {
		case key.Matches(m, s.keys.Quit):
			s.unmountAll()
			return s, tea.Quit
		case key.Matches(m, s.keys.NextTab):
			return s, s.switchTab((s.active + 1) % len(s.tabs))
		case key.Matches(m, s.keys.PrevTab):
			return s, s.switchTab((s.active - 1 + len(s.tabs)) % len(s.tabs))
		case key.Matches(m, s.keys.JumpTab):
			return s, s.switchTab(int(m.String()[0] - '1'))
		}
		return s, s.forward(s.active, msg)
	case tea.MouseMsg:
		return s, s.forward(s.active, msg)
	}
	return s, s.broadcast(msg)
}

func (s *Shell) forward(i int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.screens[i], cmd = s.screens[i].Update(msg)
	return cmd
}

func (s *Shell) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, sc := range s.screens {
		if sc != nil {
			cmds = append(cmds, s.forward(i, msg))
		}
	}
	return tea.Batch(cmds...)
}

func (s *Shell) unmountAll() {
	for _, sc := range s.screens {
		if sc != nil {
			sc.Unmount()
		}
	}
}

func (s *Shell) screenSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: s.width, Height: max(0, s.height-chromeHeight)}
}

// switchTab shows tab i. The first visit mounts its screen and starts that
// screen's fetch cycle; later visits show the existing screen as it was left.
// Reselecting the active tab is a no-op.
func (s *Shell) switchTab(i int) tea.Cmd {
	if i < 0 || i >= len(s.tabs) || i == s.active {
		return nil
	}
	s.active = i
	if s.screens[i] != nil {
		return nil
	}
	s.screens[i] = s.factory(s.tabs[i])
	var sizeCmd tea.Cmd
	if s.width > 0 {
		sizeCmd = s.forward(i, s.screenSize())
	}
	return tea.Batch(s.screens[i].Init(), sizeCmd)
}

// View draws the active screen above the tab bar and help line.
func (s *Shell) View() string {
	body := s.Screen().View()
	if s.height > 0 {
		h := max(0, s.height-chromeHeight)
		body = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, s.renderTabBar(), s.help.View(s.keys))
}

// renderTabBar draws one line. Cells too narrow for "glyph name" show the
// glyph alone.
func (s *Shell) renderTabBar() string {
	cellW := 0
	if s.width > 0 {
		cellW = max(1, s.width/len(s.tabs))
	}
	cells := make([]string, 0, len(s.tabs))
	for i, t := range s.tabs {
		label := glyph(t.Icon) + " " + t.Name
		if cellW > 0 && lipgloss.Width(label) > cellW {
			label = glyph(t.Icon)
		}
		style := inactiveTabStyle
		if i == s.active {
			style = activeTabStyle
		}
		if cellW > 0 {
			style = style.Width(cellW).MaxWidth(cellW)
		} else {
			style = style.Padding(0, 1)
		}
		cells = append(cells, style.MaxHeight(1).Render(label))
	}
	bar := strings.Join(cells, "")
	if s.width > 0 {
		return tabBarStyle.Width(s.width).MaxWidth(s.width).MaxHeight(1).Render(bar)
	}
	return bar
}
