package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jask/viagens/internal/destinations"
)

// Source is what the Home screen fetches from. *destinations.Client satisfies it.
type Source interface {
	Popular(ctx context.Context) ([]destinations.Destination, error)
	Recommended(ctx context.Context) ([]destinations.Destination, error)
}

// HomeDeps are shared by every Home mount.
type HomeDeps struct {
	Ctx    context.Context
	Source Source
	Logger *log.Logger
}

type listKind int

const (
	listPopular listKind = iota
	listRecommended
)

// fetchedMsg is one settled fetch, tagged with the mount that issued it.
type fetchedMsg struct {
	mount uuid.UUID
	list  listKind
	items []destinations.Destination
	err   error
}

func (m fetchedMsg) event() Event {
	switch {
	case m.list == listPopular && m.err != nil:
		return PopularFailed{Err: m.err}
	case m.list == listPopular:
		return PopularLoaded{Items: m.items}
	case m.err != nil:
		return RecommendedFailed{Err: m.err}
	default:
		return RecommendedLoaded{Items: m.items}
	}
}

// Home is one mount of the destinations home screen.
type Home struct {
	tab     Tab
	mountID uuid.UUID
	ctx     context.Context
	cancel  context.CancelFunc
	source  Source
	logger  *log.Logger
	keys    keyMap

	state       ViewState
	stripOffset int
	search      textinput.Model
	viewport    viewport.Model
	width       int
	height      int
}

// NewHome mounts a Home screen for tab. Its fetches live until Unmount.
func NewHome(tab Tab, deps HomeDeps) *Home {
	parent := deps.Ctx
	if parent == nil {
		parent = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithCancel(parent)

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = searchHint
	search.Width = len(searchHint)

	return &Home{
		tab:      tab,
		mountID:  uuid.New(),
		ctx:      ctx,
		cancel:   cancel,
		source:   deps.Source,
		logger:   logger.With("tab", tab.Name),
		keys:     defaultKeyMap(),
		state:    InitialState(),
		search:   search,
		viewport: viewport.New(0, 0),
	}
}

// HomeFactory binds deps into a ScreenFactory; every tab gets the same screen.
func HomeFactory(deps HomeDeps) ScreenFactory {
	return func(tab Tab) Screen { return NewHome(tab, deps) }
}

// Init issues both fetches at once; they settle independently.
func (h *Home) Init() tea.Cmd {
	return tea.Batch(h.fetch(listPopular), h.fetch(listRecommended))
}

func (h *Home) fetch(list listKind) tea.Cmd {
	ctx, mount, src := h.ctx, h.mountID, h.source
	return func() tea.Msg {
		var (
			items []destinations.Destination
			err   error
		)
		if list == listPopular {
			items, err = src.Popular(ctx)
		} else {
			items, err = src.Recommended(ctx)
		}
		return fetchedMsg{mount: mount, list: list, items: items, err: err}
	}
}

// Unmount aborts in-flight fetches. Results that still arrive are dropped.
func (h *Home) Unmount() {
	h.cancel()
}

// State returns the screen's current view state.
func (h *Home) State() ViewState { return h.state }

// Update applies fetch results, resizes and strip scrolling; other input
// scrolls the page.
func (h *Home) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case fetchedMsg:
		if m.mount != h.mountID {
			return h, nil
		}
		if m.err != nil {
			h.logFetchError(m)
		}
		h.state = Reduce(h.state, m.event())
		h.refresh()
		return h, nil
	case tea.WindowSizeMsg:
		h.width, h.height = m.Width, m.Height
		h.viewport.Width, h.viewport.Height = m.Width, m.Height
		h.stripOffset = clampOffset(h.stripOffset, len(h.state.Popular), popularVisible(h.contentWidth()))
		h.refresh()
		return h, nil
	case tea.KeyMsg:
		if h.state.Loading {
			return h, nil
		}
		switch {
		case key.Matches(m, h.keys.StripLeft):
			h.stripOffset = clampOffset(h.stripOffset-1, len(h.state.Popular), popularVisible(h.contentWidth()))
			h.refresh()
			return h, nil
		case key.Matches(m, h.keys.StripRight):
			h.stripOffset = clampOffset(h.stripOffset+1, len(h.state.Popular), popularVisible(h.contentWidth()))
			h.refresh()
			return h, nil
		}
	}
	if h.state.Loading {
		return h, nil
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *Home) logFetchError(m fetchedMsg) {
	what := "popular"
	if m.list == listRecommended {
		what = "recommended"
	}
	h.logger.Error("Error fetching "+what+" destinations", "err", m.err, "mount", h.mountID)
}

func (h *Home) contentWidth() int {
	return max(minContentWidth, h.width-2)
}

// refresh rebuilds the scrollable page from state.
func (h *Home) refresh() {
	if h.state.Loading {
		return
	}
	h.viewport.SetContent(h.renderPage())
}

func (h *Home) renderPage() string {
	w := h.contentWidth()
	sections := []string{
		renderHeader(h.search.View(), w),
		sectionTitleStyle.Render(titleCategories),
		renderCategories(w),
		renderSectionHeader(titlePopular, w),
		renderPopularStrip(h.state.Popular, h.stripOffset, w),
		sectionTitleStyle.Render(titleRecommended),
		renderRecommendedGrid(h.state.Recommended, w),
	}
	page := strings.Join(sections, "\n")
	return lipgloss.NewStyle().PaddingLeft(1).Render(page)
}

// View shows the loading text until the recommended list settles, then the
// scrollable page.
func (h *Home) View() string {
	if h.state.Loading {
		if h.width == 0 || h.height == 0 {
			return loadingStyle.Render(loadingText)
		}
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, loadingStyle.Render(loadingText))
	}
	if h.width == 0 || h.height == 0 {
		return h.renderPage()
	}
	return h.viewport.View()
}
