package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/viagens/internal/destinations"
)

const (
	welcomeText = "Bem-Vindo!"
	userName    = "Sr. Maria"
	loadingText = "Carregando..."

	titleCategories  = "Categorias"
	titlePopular     = "Destinos Populares"
	titleRecommended = "Recomendado"
	searchHint       = "Buscar ..."

	popularCardWidth   = 20
	popularCardGap     = 2
	popularImageHeight = 3
	recommendImageH    = 4
	recommendGap       = 2
	categoryPerRow     = 4
	minContentWidth    = 24
)

// categories are fixed; they render whatever the fetches did.
var categories = []string{"Resorts", "Estadias", "Hoteis", "Apartment", "Ver tudo"}

// imagePlaceholder stands in for a remote image. The terminal cannot draw it,
// so the frame carries the URL instead.
func imagePlaceholder(url string, w, h int) string {
	label := url
	if i := strings.Index(label, "://"); i >= 0 {
		label = label[i+3:]
	}
	return imageStyle.Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render("▧ " + label)
}

func renderCard(d destinations.Destination, w, imgH int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		imagePlaceholder(d.Imagem.String(), w, imgH),
		destTitleStyle.MaxWidth(w).Render(d.Nome.String()),
		destLocationStyle.MaxWidth(w).Render(d.Local.String()),
	)
}

func renderHeader(search string, width int) string {
	inner := width - headerStyle.GetHorizontalFrameSize()
	box := searchBoxStyle.Width(inner - searchBoxStyle.GetHorizontalBorderSize()).
		Render(searchIconStyle.Render(glyph(iconSearch)) + search)

	avatar := avatarStyle.Render("◉")
	who := lipgloss.JoinVertical(lipgloss.Left, welcomeStyle.Render(welcomeText), nameStyle.Render(userName))
	left := lipgloss.JoinHorizontal(lipgloss.Center, avatar, who)
	bell := glyph(iconNotifications)
	pad := inner - lipgloss.Width(left) - lipgloss.Width(bell)
	if pad < 1 {
		pad = 1
	}
	profile := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", pad), bell)

	return headerStyle.Width(width - headerStyle.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, box, profile))
}

func renderCategories(width int) string {
	itemW := width * 22 / 100
	if itemW < 8 {
		itemW = 8
	}
	perRow := categoryPerRow
	if perRow*itemW > width {
		perRow = max(1, width/itemW)
	}
	gap := 1
	if perRow > 1 {
		gap = max(1, (width-perRow*itemW)/(perRow-1))
	}

	var rows []string
	for start := 0; start < len(categories); start += perRow {
		end := min(start+perRow, len(categories))
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gap))
			}
			cells = append(cells, categoryItemStyle.Width(itemW).Render(glyph(iconHome)+"\n"+categories[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// popularVisible is how many popular cards fit side by side.
func popularVisible(width int) int {
	return max(1, (width+popularCardGap)/(popularCardWidth+popularCardGap))
}

func clampOffset(offset, total, visible int) int {
	maxOffset := max(0, total-visible)
	return min(max(0, offset), maxOffset)
}

func renderSectionHeader(title string, width int) string {
	t := sectionTitleStyle.Render(title)
	icon := glyph(iconMenu)
	pad := max(1, width-lipgloss.Width(t)-lipgloss.Width(icon))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, t, strings.Repeat(" ", pad), icon)
}

// renderPopularStrip draws the horizontally scrolled window of popular cards.
func renderPopularStrip(items []destinations.Destination, offset, width int) string {
	if len(items) == 0 {
		return ""
	}
	visible := popularVisible(width)
	offset = clampOffset(offset, len(items), visible)
	end := min(offset+visible, len(items))

	cells := make([]string, 0, 2*(end-offset))
	for i := offset; i < end; i++ {
		if i > offset {
			cells = append(cells, strings.Repeat(" ", popularCardGap))
		}
		cells = append(cells, renderCard(items[i], popularCardWidth, popularImageHeight))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	if len(items) <= visible {
		return strip
	}
	var hint string
	if offset > 0 {
		hint += "◀ "
	}
	hint += strings.Repeat("•", end-offset) + strings.Repeat("·", len(items)-(end-offset))
	if end < len(items) {
		hint += " ▶"
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, scrollStyle.Render(hint))
}

// renderRecommendedGrid wraps recommended cards two per row.
func renderRecommendedGrid(items []destinations.Destination, width int) string {
	if len(items) == 0 {
		return ""
	}
	colW := max(1, (width-recommendGap)/2)

	var rows []string
	for i := 0; i < len(items); i += 2 {
		left := renderCard(items[i], colW, recommendImageH)
		if i+1 < len(items) {
			right := renderCard(items[i+1], colW, recommendImageH)
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", recommendGap), right))
		} else {
			rows = append(rows, left)
		}
	}
	return strings.Join(rows, "\n\n")
}
