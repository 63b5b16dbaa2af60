package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/hylla/listan/internal/domain"
	"github.com/hylla/listan/internal/engine"
	"github.com/hylla/listan/internal/swipe"
)

// View handles view.
func (m Model) View() tea.View {
	if m.err != nil {
		v := tea.NewView("error: " + m.err.Error() + "\n\npress r to retry • q quit\n")
		v.MouseMode = tea.MouseModeCellMotion
		v.AltScreen = true
		return v
	}
	if !m.ready {
		v := tea.NewView("loading...")
		v.MouseMode = tea.MouseModeCellMotion
		v.AltScreen = true
		return v
	}

	header := m.renderHeader()

	var body string
	switch m.viewMode {
	case engine.ViewGrid:
		body = m.renderGrid()
	case engine.ViewBoard:
		body = m.renderBoard()
	default:
		body = m.renderList()
	}

	sections := []string{header, body}
	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}
	content := strings.Join(sections, "\n")

	helpBubble := m.help
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := m.styles.Muted.
		BorderTop(true).
		BorderForeground(m.styles.Dim.GetForeground()).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(helpBubble.View(m.keys))

	if m.height > 0 {
		helpHeight := lipgloss.Height(helpLine)
		content = fitLines(content, max(0, m.height-helpHeight))
	}
	fullContent := content + "\n" + helpLine

	if overlay := m.renderOverlay(); overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}

	v := tea.NewView(fullContent)
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// renderHeader emits exactly listHeaderLines lines so mouse hit testing on
// list rows stays aligned with the rendered output.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("listan")
	screenName := "tasks"
	if m.screen == screenProjects {
		screenName = "projects"
	}
	line := title + "  " + m.styles.Header.Render(screenName) +
		m.styles.Muted.Render("  ["+string(m.viewMode)+"]")
	if m.offline() {
		line += "  " + m.styles.Error.Render("offline")
	}
	if m.refreshing {
		line += "  " + m.spinner.View()
	}

	second := m.styles.Muted.Render(m.filterSummary())
	if second == "" {
		total := m.visibleCount()
		second = m.styles.Dim.Render(fmt.Sprintf("%d items", total))
	}

	third := m.styles.Dim.Render(strings.Repeat("─", max(1, m.width)))
	return line + "\n" + second + "\n" + third
}

// renderList renders the windowed rows with swipe shift and reveal
// affordances.
func (m Model) renderList() string {
	if m.screen == screenProjects {
		pres := engine.Present(m.visibleProjects(), engine.ViewList, m.window(), nil)
		if len(pres.Rows) == 0 {
			return m.styles.Dim.Render("nothing to show")
		}
		lines := make([]string, 0, len(pres.Rows))
		for idx, project := range pres.Rows {
			lines = append(lines, m.renderSwipeRow(project.ID, m.projectLine(project, idx == m.selected)))
		}
		return strings.Join(lines, "\n")
	}

	pres := engine.Present(m.visibleTasks(), engine.ViewList, m.window(), nil)
	if len(pres.Rows) == 0 {
		return m.styles.Dim.Render("nothing to show")
	}
	lines := make([]string, 0, len(pres.Rows))
	for idx, task := range pres.Rows {
		lines = append(lines, m.renderSwipeRow(task.ID, m.taskLine(task, idx == m.selected)))
	}
	return strings.Join(lines, "\n")
}

// renderSwipeRow shifts a dragged row horizontally and exposes the action
// affordance underneath, proportional to the drag offset.
func (m Model) renderSwipeRow(id, line string) string {
	offset := m.swipes.Offset(id)
	if offset == 0 && m.swipes.Phase(id) == swipe.PhaseIdle {
		return line
	}
	cells := int(offset / swipeUnitsPerCell)
	if cells == 0 {
		return line
	}
	if cells > 0 {
		reveal := m.styles.RevealRight.Render(padRight("✓ done", cells))
		return reveal + line
	}
	shift := -cells
	runes := []rune(line)
	if shift < len(runes) {
		line = string(runes[shift:])
	} else {
		line = ""
	}
	return line + m.styles.RevealLeft.Render(padLeft("✗ delete", shift))
}

// taskLine formats one task row.
func (m Model) taskLine(task domain.Task, selected bool) string {
	marker := "  "
	if selected {
		marker = m.styles.Header.Render("› ")
	}
	glyph := "[ ]"
	if task.Status == domain.TaskStatusCompleted {
		glyph = "[x]"
	}

	title := task.Title
	switch {
	case task.Status == domain.TaskStatusCompleted:
		title = m.styles.Completed.Render(title)
	case task.Overdue(m.clock()):
		title = m.styles.Overdue.Render(title)
	case selected:
		title = m.styles.Title.Render(title)
	}

	meta := []string{m.priorityBadge(task.Priority), domain.TaskStatusLabel(task.Status)}
	if task.DueDate != nil {
		due := task.DueDate.Format("2006-01-02")
		if task.Overdue(m.clock()) {
			due = m.styles.Overdue.Render(due)
		}
		meta = append(meta, due)
	}
	if task.ProjectName != "" {
		meta = append(meta, task.ProjectName)
	}
	return marker + glyph + " " + title + "  " + m.styles.Muted.Render(strings.Join(meta, " · "))
}

// projectLine formats one project row.
func (m Model) projectLine(project domain.Project, selected bool) string {
	marker := "  "
	if selected {
		marker = m.styles.Header.Render("› ")
	}
	glyph := "[ ]"
	if project.Status == domain.ProjectStatusCompleted {
		glyph = "[x]"
	}

	title := project.Title
	switch {
	case project.Status == domain.ProjectStatusCompleted:
		title = m.styles.Completed.Render(title)
	case project.Overdue(m.clock()):
		title = m.styles.Overdue.Render(title)
	case selected:
		title = m.styles.Title.Render(title)
	}

	meta := []string{m.priorityBadge(project.Priority), domain.ProjectStatusLabel(project.Status)}
	if project.DueDate != nil {
		meta = append(meta, project.DueDate.Format("2006-01-02"))
	}
	return marker + glyph + " " + title + "  " + m.styles.Muted.Render(strings.Join(meta, " · "))
}

// renderGrid lays the windowed rows out as cards, gridColumns per row.
func (m Model) renderGrid() string {
	cards := m.gridCards()
	if len(cards) == 0 {
		return m.styles.Dim.Render("nothing to show")
	}

	cols := max(1, m.gridColumns)
	cardWidth := max(16, (m.width-2)/cols-2)
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		rendered := make([]string, 0, end-start)
		for idx := start; idx < end; idx++ {
			style := m.styles.Card.Width(cardWidth)
			if idx == m.selected {
				style = style.BorderForeground(m.styles.Header.GetForeground())
			}
			rendered = append(rendered, style.Render(cards[idx]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return strings.Join(rows, "\n")
}

// gridCards builds the card bodies for the active screen.
func (m Model) gridCards() []string {
	if m.screen == screenProjects {
		pres := engine.Present(m.visibleProjects(), engine.ViewGrid, m.window(), nil)
		cards := make([]string, 0, len(pres.Rows))
		for _, project := range pres.Rows {
			body := m.styles.Title.Render(truncate(project.Title, 30)) + "\n" +
				m.styles.Muted.Render(m.priorityBadge(project.Priority)+" · "+domain.ProjectStatusLabel(project.Status))
			cards = append(cards, body)
		}
		return cards
	}
	pres := engine.Present(m.visibleTasks(), engine.ViewGrid, m.window(), nil)
	cards := make([]string, 0, len(pres.Rows))
	for _, task := range pres.Rows {
		body := m.styles.Title.Render(truncate(task.Title, 30)) + "\n" +
			m.styles.Muted.Render(m.priorityBadge(task.Priority)+" · "+domain.TaskStatusLabel(task.Status))
		if task.ProjectName != "" {
			body += "\n" + m.styles.Dim.Render(truncate(task.ProjectName, 30))
		}
		cards = append(cards, body)
	}
	return cards
}

// renderBoard renders the fixed status columns side by side.
func (m Model) renderBoard() string {
	type columnView struct {
		title string
		lines []string
	}

	var columns []columnView
	selectedID := m.selectedItemID()

	if m.screen == screenProjects {
		pres := engine.Present(m.visibleProjects(), engine.ViewBoard, engine.Window{}, engine.ProjectBoardColumns())
		for _, col := range pres.Columns {
			view := columnView{title: fmt.Sprintf("%s (%d)", col.Title, len(col.Items))}
			for _, project := range col.Items {
				title := truncate(project.Title, 24)
				if project.ID == selectedID {
					title = m.styles.Selected.Render(title)
				}
				view.lines = append(view.lines, title)
			}
			columns = append(columns, view)
		}
	} else {
		pres := engine.Present(m.visibleTasks(), engine.ViewBoard, engine.Window{}, engine.TaskBoardColumns())
		for _, col := range pres.Columns {
			view := columnView{title: fmt.Sprintf("%s (%d)", col.Title, len(col.Items))}
			for _, task := range col.Items {
				title := truncate(task.Title, 24)
				if task.ID == selectedID {
					title = m.styles.Selected.Render(title)
				}
				view.lines = append(view.lines, title)
			}
			columns = append(columns, view)
		}
	}

	colWidth := max(18, (m.width-2)/max(1, len(columns))-2)
	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		lines := append([]string{m.styles.Header.Render(col.title)}, col.lines...)
		if len(col.lines) == 0 {
			lines = append(lines, m.styles.Dim.Render("(empty)"))
		}
		rendered = append(rendered, m.styles.Column.Width(colWidth).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderFooter shows the pagination position and the transient status.
func (m Model) renderFooter() string {
	var parts []string
	if m.pageSize > 0 && m.viewMode != engine.ViewBoard {
		total := m.visibleCount()
		if total > m.pageSize {
			first := m.pageOffset + 1
			last := min(m.pageOffset+m.pageSize, total)
			parts = append(parts, fmt.Sprintf("%d-%d of %d", first, last, total))
		}
	}
	if strings.TrimSpace(m.status) != "" && m.status != "ready" {
		parts = append(parts, m.status)
	}
	if len(parts) == 0 {
		return ""
	}
	return m.styles.Dim.Render(strings.Join(parts, "  •  "))
}

// renderOverlay renders whichever modal owns the screen.
func (m Model) renderOverlay() string {
	switch m.mode {
	case modeSearch:
		return m.styles.Card.Render(m.searchInput.View())
	case modeForm:
		return m.renderFormOverlay()
	case modeInfo:
		return m.renderInfoOverlay()
	default:
		return ""
	}
}

// renderFormOverlay renders the create/edit form with inline field errors.
func (m Model) renderFormOverlay() string {
	title := "new item"
	if m.editingID != "" {
		title = "edit item"
	}
	lines := []string{m.styles.Header.Render(title), ""}

	fieldKeys := []string{"title", "description", "due"}
	for idx, input := range m.formInputs {
		lines = append(lines, input.View())
		if msg, ok := m.formErrors[fieldKeys[idx]]; ok {
			lines = append(lines, m.styles.Error.Render("  "+msg))
		}
	}
	priority := priorityCycle()[m.formPriority]
	lines = append(lines, "",
		"priority: "+m.priorityBadge(priority)+m.styles.Dim.Render("  (ctrl+p cycles)"),
		"",
		m.styles.Muted.Render("enter save • tab next field • esc cancel"))
	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

// renderInfoOverlay renders the item detail view through the markdown
// renderer.
func (m Model) renderInfoOverlay() string {
	var md strings.Builder
	if m.screen == screenProjects {
		project, ok := m.projectByID(m.infoID)
		if !ok {
			return m.styles.Card.Render("item not found")
		}
		fmt.Fprintf(&md, "# %s\n\n", project.Title)
		fmt.Fprintf(&md, "- status: %s\n", domain.ProjectStatusLabel(project.Status))
		fmt.Fprintf(&md, "- priority: %s\n", project.Priority)
		if project.DueDate != nil {
			fmt.Fprintf(&md, "- due: %s\n", project.DueDate.Format("2006-01-02"))
		}
		for _, assignee := range project.Assignees {
			fmt.Fprintf(&md, "- assignee: %s\n", assignee.Name)
		}
		if strings.TrimSpace(project.Description) != "" {
			fmt.Fprintf(&md, "\n%s\n", project.Description)
		}
	} else {
		task, ok := m.taskByID(m.infoID)
		if !ok {
			return m.styles.Card.Render("item not found")
		}
		fmt.Fprintf(&md, "# %s\n\n", task.Title)
		fmt.Fprintf(&md, "- status: %s\n", domain.TaskStatusLabel(task.Status))
		fmt.Fprintf(&md, "- priority: %s\n", task.Priority)
		if task.DueDate != nil {
			fmt.Fprintf(&md, "- due: %s\n", task.DueDate.Format("2006-01-02"))
		}
		if task.ProjectName != "" {
			fmt.Fprintf(&md, "- project: %s\n", task.ProjectName)
		}
		for _, assignee := range task.Assignees {
			fmt.Fprintf(&md, "- assignee: %s\n", assignee.Name)
		}
		if strings.TrimSpace(task.Description) != "" {
			fmt.Fprintf(&md, "\n%s\n", task.Description)
		}
	}
	rendered := m.md.render(md.String(), max(24, m.width-12))
	return m.styles.Card.Render(rendered + "\n\n" + m.styles.Muted.Render("esc close"))
}

// priorityBadge styles a priority label.
func (m Model) priorityBadge(priority domain.Priority) string {
	style := m.priorityStyle(priority)
	return style.Render(string(priority))
}

func (m Model) priorityStyle(priority domain.Priority) lipgloss.Style {
	switch priority {
	case domain.PriorityLow:
		return m.styles.PriorityLow
	case domain.PriorityHigh:
		return m.styles.PriorityHigh
	case domain.PriorityCritical:
		return m.styles.PriorityCritical
	default:
		return m.styles.PriorityMedium
	}
}

// fitLines pads or truncates content to exactly maxLines lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent composites the overlay centered above the base content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centeredOverlay := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
	)
	overlayLayer := lipgloss.NewLayer(centeredOverlay).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	if limit <= 1 {
		return string(rs[:limit])
	}
	return string(rs[:limit-1]) + "…"
}

func padRight(s string, width int) string {
	rs := []rune(s)
	if len(rs) >= width {
		return string(rs[:width])
	}
	return s + strings.Repeat(" ", width-len(rs))
}

func padLeft(s string, width int) string {
	rs := []rune(s)
	if len(rs) >= width {
		return string(rs[len(rs)-width:])
	}
	return strings.Repeat(" ", width-len(rs)) + s
}
