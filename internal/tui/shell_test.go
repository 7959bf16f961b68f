package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jask/viagens/internal/destinations"
	"github.com/jask/viagens/internal/logging"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestShell(src *fakeSource) *Shell {
	return NewHomeShell(HomeDeps{Source: src, Logger: logging.Discard()})
}

func shellSend(t *testing.T, s *Shell, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := s.Update(msg)
	require.Same(t, s, next)
	return cmd
}

func activeHome(t *testing.T, s *Shell) *Home {
	t.Helper()
	h, ok := s.Screen().(*Home)
	require.True(t, ok)
	return h
}

func TestShellTabs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Tab{
		{Name: "Home", Icon: "home"},
		{Name: "Explorar", Icon: "explore"},
		{Name: "Procurar", Icon: "search"},
		{Name: "Perfil", Icon: "person"},
	}, Tabs)

	seen := map[string]bool{}
	for _, tab := range Tabs {
		g := glyph(tab.Icon)
		require.NotEqual(t, "?", g)
		require.False(t, seen[g], "icon glyphs must differ")
		seen[g] = true
	}
}

func TestShellInitFetchesOnce(t *testing.T) {
	t.Parallel()

	src := &fakeSource{recommended: []destinations.Destination{}}
	s := newTestShell(src)
	require.Equal(t, "Home", s.ActiveTab().Name)

	msgs := runCmd(t, s.Init())
	require.ElementsMatch(t, []string{destinations.PathPopular, destinations.PathRecommended}, src.Calls())
	for _, m := range msgs {
		shellSend(t, s, m)
	}
	require.False(t, activeHome(t, s).State().Loading)
}

func TestShellFirstVisitMountsFreshScreen(t *testing.T) {
	t.Parallel()

	src := &fakeSource{popular: []destinations.Destination{paris}, recommended: []destinations.Destination{roma}}
	s := newTestShell(src)
	shellSend(t, s, tea.WindowSizeMsg{Width: 100, Height: 60})
	for _, m := range runCmd(t, s.Init()) {
		shellSend(t, s, m)
	}
	first := activeHome(t, s)
	require.False(t, first.State().Loading)

	cmd := shellSend(t, s, keyMsg("tab"))
	require.Equal(t, "Explorar", s.ActiveTab().Name)
	second := activeHome(t, s)
	require.NotSame(t, first, second)
	require.NoError(t, first.ctx.Err(), "hidden tab stays mounted")
	require.True(t, second.State().Loading)
	require.Equal(t, 100, second.width)
	require.Equal(t, 60-chromeHeight, second.height)

	msgs := runCmd(t, cmd)
	require.Len(t, src.Calls(), 4)
	for _, m := range msgs {
		shellSend(t, s, m)
	}
	require.False(t, second.State().Loading)
	require.Equal(t, []destinations.Destination{paris}, second.State().Popular)
}

func TestShellReturnReusesScreen(t *testing.T) {
	t.Parallel()

	src := &fakeSource{popular: []destinations.Destination{paris}, recommended: []destinations.Destination{roma}}
	s := newTestShell(src)
	shellSend(t, s, tea.WindowSizeMsg{Width: 100, Height: 60})
	for _, m := range runCmd(t, s.Init()) {
		shellSend(t, s, m)
	}
	home := activeHome(t, s)

	for _, m := range runCmd(t, shellSend(t, s, keyMsg("2"))) {
		shellSend(t, s, m)
	}
	calls := len(src.Calls())
	require.Equal(t, 4, calls)

	cmd := shellSend(t, s, keyMsg("1"))
	require.Nil(t, cmd)
	require.Equal(t, "Home", s.ActiveTab().Name)
	require.Same(t, home, activeHome(t, s))
	require.False(t, home.State().Loading)
	require.Equal(t, []destinations.Destination{paris}, home.State().Popular)
	require.Len(t, src.Calls(), calls, "returning to a tab must not refetch")
	require.NotContains(t, s.View(), loadingText)
}

func TestShellResizeReachesHiddenScreens(t *testing.T) {
	t.Parallel()

	s := newTestShell(&fakeSource{})
	home := activeHome(t, s)
	shellSend(t, s, keyMsg("2"))

	shellSend(t, s, tea.WindowSizeMsg{Width: 70, Height: 30})
	require.Equal(t, 70, home.width)
	require.Equal(t, 30-chromeHeight, home.height)
	require.Equal(t, 70, activeHome(t, s).width)
}

func TestShellKeysNavigate(t *testing.T) {
	t.Parallel()

	s := newTestShell(&fakeSource{})

	shellSend(t, s, keyMsg("4"))
	require.Equal(t, "Perfil", s.ActiveTab().Name)

	shellSend(t, s, keyMsg("shift+tab"))
	require.Equal(t, "Procurar", s.ActiveTab().Name)

	shellSend(t, s, keyMsg("tab"))
	shellSend(t, s, keyMsg("tab"))
	require.Equal(t, "Home", s.ActiveTab().Name)

	shellSend(t, s, keyMsg("shift+tab"))
	require.Equal(t, "Perfil", s.ActiveTab().Name)

	shellSend(t, s, keyMsg("2"))
	require.Equal(t, "Explorar", s.ActiveTab().Name)
}

func TestShellReselectIsNoop(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	s := newTestShell(src)
	before := s.Screen()

	cmd := shellSend(t, s, keyMsg("1"))
	require.Nil(t, cmd)
	require.Same(t, before, s.Screen())
	require.Empty(t, src.Calls())
}

func TestShellDeliversResultsToHiddenTab(t *testing.T) {
	t.Parallel()

	src := &fakeSource{popular: []destinations.Destination{paris}, recommended: []destinations.Destination{roma}}
	s := newTestShell(src)
	home := activeHome(t, s)
	pending := runCmd(t, s.Init())

	shellSend(t, s, keyMsg("3"))
	for _, m := range pending {
		shellSend(t, s, m)
	}
	h := activeHome(t, s)
	require.Equal(t, "Procurar", h.tab.Name)
	require.Equal(t, InitialState(), h.State(), "results carry the mount they belong to")

	require.False(t, home.State().Loading)
	require.Equal(t, []destinations.Destination{roma}, home.State().Recommended)
}

func TestShellQuitUnmounts(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "ctrl+c"} {
		s := newTestShell(&fakeSource{})
		home := activeHome(t, s)
		shellSend(t, s, keyMsg("4"))
		profile := activeHome(t, s)
		cmd := shellSend(t, s, keyMsg(k))
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		require.True(t, ok, k)
		require.Error(t, home.ctx.Err())
		require.Error(t, profile.ctx.Err())
	}
}

func TestShellViewHasTabBarAndNoHeader(t *testing.T) {
	t.Parallel()

	s := newTestShell(&fakeSource{})
	shellSend(t, s, tea.WindowSizeMsg{Width: 80, Height: 20})

	view := s.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 20)
	require.Empty(t, strings.TrimSpace(lines[0]), "no header chrome above the screen")
	tabBar := lines[len(lines)-2]
	for _, tab := range Tabs {
		require.Contains(t, tabBar, glyph(tab.Icon)+" "+tab.Name)
	}
	require.Contains(t, view, loadingText)
}

func TestShellViewNarrowTabBarStaysOneLine(t *testing.T) {
	t.Parallel()

	s := newTestShell(&fakeSource{})
	shellSend(t, s, tea.WindowSizeMsg{Width: 30, Height: 12})

	lines := strings.Split(s.View(), "\n")
	require.Len(t, lines, 12)
	tabBar := lines[len(lines)-2]
	for _, tab := range Tabs {
		require.Contains(t, tabBar, glyph(tab.Icon))
	}
	require.Contains(t, tabBar, "Home")
	require.NotContains(t, tabBar, "Explorar")
	require.LessOrEqual(t, lipgloss.Width(tabBar), 30)
}
