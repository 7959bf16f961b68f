package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Palette: the destinos app colors
// ---------------------------------------------------------------------------

const (
	colorWhite     lipgloss.Color = "#ffffff"
	colorLightBlue lipgloss.Color = "#add8e6"
	colorSearchBg  lipgloss.Color = "#efefef"
	colorPurple    lipgloss.Color = "#5e50a1"
	colorGrey      lipgloss.Color = "#777777"
	colorMuted     lipgloss.Color = "#999999"
	colorImageBg   lipgloss.Color = "#d9d9d9"
	colorTabBar    lipgloss.Color = "#f4f4f6"
	colorTabActive lipgloss.Color = "#007aff"
	colorTabIdle   lipgloss.Color = "#8e8e93"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	loadingStyle = lipgloss.NewStyle()

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLightBlue).
			Padding(0, 1).
			MarginBottom(1)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSearchBg).
			Padding(0, 1)

	searchIconStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginRight(1)

	avatarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGrey).
			Foreground(colorGrey).
			Width(4).
			Align(lipgloss.Center).
			MarginRight(1)

	welcomeStyle = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(colorGrey)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	categoryItemStyle = lipgloss.NewStyle().
				Background(colorPurple).
				Foreground(colorWhite).
				Align(lipgloss.Center, lipgloss.Center).
				Height(3)

	imageStyle = lipgloss.NewStyle().
			Background(colorImageBg).
			Foreground(colorGrey).
			Align(lipgloss.Center, lipgloss.Center)

	destTitleStyle    = lipgloss.NewStyle().Bold(true)
	destLocationStyle = lipgloss.NewStyle().Foreground(colorGrey)

	scrollStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// Bottom tab bar
	tabBarStyle = lipgloss.NewStyle().Background(colorTabBar)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorTabActive).
			Background(colorTabBar).
			Bold(true).
			Align(lipgloss.Center)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorTabIdle).
				Background(colorTabBar).
				Align(lipgloss.Center)
)

// ---------------------------------------------------------------------------
// Icons: MaterialIcons names mapped to single-cell glyphs
// ---------------------------------------------------------------------------

const (
	iconHome          = "home"
	iconExplore       = "explore"
	iconSearch        = "search"
	iconPerson        = "person"
	iconNotifications = "notifications-none"
	iconMenu          = "menu"
)

var iconGlyphs = map[string]string{
	iconHome:          "⌂",
	iconExplore:       "◎",
	iconSearch:        "⌕",
	iconPerson:        "☺",
	iconNotifications: "⍾",
	iconMenu:          "≡",
}

// glyph returns the terminal glyph for a MaterialIcons name.
func glyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return "?"
}
