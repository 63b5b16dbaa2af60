// Package tui renders the interactive list screens on top of the engine and
// the mutation coordinator. The model owns per-screen filter state, the view
// mode, and the swipe controller; all list contents are derived, never stored.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/hylla/listan/internal/app"
	"github.com/hylla/listan/internal/domain"
	"github.com/hylla/listan/internal/engine"
	"github.com/hylla/listan/internal/haptics"
	"github.com/hylla/listan/internal/swipe"
	"github.com/hylla/listan/internal/theme"
)

// Service is the surface the model needs from the mutation coordinator.
type Service interface {
	Tasks() []domain.Task
	Projects() []domain.Project
	Refresh(ctx context.Context) error
	ToggleTaskStatus(ctx context.Context, id string) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CreateTask(ctx context.Context, draft app.TaskDraft) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, draft app.TaskDraft) (domain.Task, error)
	ToggleProjectStatus(ctx context.Context, id string) (domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
	CreateProject(ctx context.Context, draft app.ProjectDraft) (domain.Project, error)
	UpdateProject(ctx context.Context, id string, draft app.ProjectDraft) (domain.Project, error)
}

type screenID int

const (
	screenTasks screenID = iota
	screenProjects
)

type inputMode int

const (
	modeNone inputMode = iota
	modeSearch
	modeForm
	modeInfo
)

const (
	// listHeaderLines is the fixed chrome above the first list row; mouse hit
	// testing subtracts it.
	listHeaderLines = 3
	// swipeUnitsPerCell converts horizontal cell travel into gesture units so
	// the 80-unit travel maps to a plausible number of columns.
	swipeUnitsPerCell  = 4.0
	swipeFrameInterval = time.Second / 60
)

// loadedMsg carries the refresh outcome through update handling.
type loadedMsg struct {
	err error
}

// actionMsg carries a mutation outcome through update handling.
type actionMsg struct {
	err    error
	status string
}

// swipeTickMsg drives one settle-animation frame.
type swipeTickMsg struct{}

// formField indexes into formInputs.
const (
	fieldTitle = iota
	fieldDescription
	fieldDue
	fieldCount
)

// Model represents TUI data and state.
type Model struct {
	svc Service

	keys   keyMap
	help   help.Model
	styles theme.Tokens
	md     markdownRenderer

	width  int
	height int
	ready  bool
	err    error
	status string

	refreshing bool
	spinner    spinner.Model

	screen        screenID
	viewMode      engine.ViewMode
	pageSize      int
	gridColumns   int
	taskFilter    engine.FilterState
	projectFilter engine.FilterState
	selected      int
	pageOffset    int

	tasks    []domain.Task
	projects []domain.Project

	network NetworkToggle
	haptics haptics.Sink
	clock   func() time.Time

	swipeCfg   swipe.Config
	swipes     *swipe.Controller
	dragRowID  string
	dragStartX int

	mode         inputMode
	searchInput  textinput.Model
	searchBackup string
	formInputs   []textinput.Model
	formFocus    int
	formPriority int
	formErrors   app.FieldErrors
	editingID    string
	infoID       string
}

// NewModel constructs the model. Options override the rendering, gesture, and
// collaborator defaults.
func NewModel(svc Service, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false

	searchInput := textinput.New()
	searchInput.Prompt = "/ "
	searchInput.Placeholder = "title, description, project"
	searchInput.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		svc:         svc,
		status:      "loading...",
		keys:        newKeyMap(),
		help:        h,
		styles:      theme.Default(""),
		spinner:     sp,
		viewMode:    engine.ViewList,
		pageSize:    DefaultViewConfig().PageSize,
		gridColumns: DefaultViewConfig().GridColumns,
		searchInput: searchInput,
		haptics:     haptics.Noop(),
		clock:       time.Now,
		swipeCfg:    swipe.DefaultConfig(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.swipes = swipe.NewController(m.swipeCfg, m.haptics, nil)
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadData, m.spinner.Tick)
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(max(0, m.width-2))
		return m, nil

	case loadedMsg:
		m.refreshing = false
		if msg.err != nil {
			if errors.Is(msg.err, app.ErrStaleRefresh) {
				return m, nil
			}
			if !m.ready {
				m.err = msg.err
				return m, nil
			}
			m.status = msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.ready = true
		m.tasks = m.svc.Tasks()
		m.projects = m.svc.Projects()
		m.clampSelection()
		m.status = "ready"
		return m, nil

	case actionMsg:
		if msg.err != nil {
			var fieldErrs app.FieldErrors
			if errors.As(msg.err, &fieldErrs) {
				m.mode = modeForm
				m.formErrors = fieldErrs
				m.status = "fix the highlighted fields"
				return m, nil
			}
			m.status = msg.err.Error()
		} else if msg.status != "" {
			m.status = msg.status
		}
		m.tasks = m.svc.Tasks()
		m.projects = m.svc.Projects()
		m.clampSelection()
		return m, nil

	case swipeTickMsg:
		if m.swipes.Step() {
			return m, m.swipeTick()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		if m.mode != modeNone {
			return m.handleInputModeKey(msg)
		}
		return m.handleNormalModeKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	default:
		return m, nil
	}
}

// handleNormalModeKey dispatches keys outside of overlays.
func (m Model) handleNormalModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.refresh):
		m.refreshing = true
		m.status = "refreshing..."
		return m, tea.Batch(m.loadData, m.spinner.Tick)

	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.moveUp):
		if m.selected > 0 {
			m.selected--
			m.haptics.Emit(haptics.KindSelection)
		}
		return m, nil

	case key.Matches(msg, m.keys.moveDown):
		if m.selected < len(m.windowRows())-1 {
			m.selected++
			m.haptics.Emit(haptics.KindSelection)
		}
		return m, nil

	case key.Matches(msg, m.keys.pagePrev):
		if m.pageSize > 0 && m.pageOffset > 0 {
			m.pageOffset = max(0, m.pageOffset-m.pageSize)
			m.selected = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.pageNext):
		if m.pageSize > 0 && m.pageOffset+m.pageSize < m.visibleCount() {
			m.pageOffset += m.pageSize
			m.selected = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.cycleView):
		m.viewMode = engine.NextViewMode(m.viewMode)
		m.status = "view: " + string(m.viewMode)
		return m, nil

	case key.Matches(msg, m.keys.switchScreen):
		if m.screen == screenTasks {
			m.screen = screenProjects
			m.status = "projects"
		} else {
			m.screen = screenTasks
			m.status = "tasks"
		}
		m.selected = 0
		m.pageOffset = 0
		return m, nil

	case key.Matches(msg, m.keys.search):
		return m.startSearchMode()

	case key.Matches(msg, m.keys.statusFilter):
		m.cycleStatusFilter()
		return m, nil

	case key.Matches(msg, m.keys.priorityFilter):
		m.cyclePriorityFilter()
		return m, nil

	case key.Matches(msg, m.keys.scopeFilter):
		m.cycleScopeFilter()
		return m, nil

	case key.Matches(msg, m.keys.sortKey):
		m.cycleSortKey()
		return m, nil

	case key.Matches(msg, m.keys.clearFilters):
		*m.filter() = engine.FilterState{}
		m.pageOffset = 0
		m.selected = 0
		m.status = "filters cleared"
		return m, nil

	case key.Matches(msg, m.keys.toggleDone):
		id := m.selectedItemID()
		if id == "" {
			return m, nil
		}
		return m, m.toggleStatusCmd(id)

	case key.Matches(msg, m.keys.deleteItem):
		id := m.selectedItemID()
		if id == "" {
			return m, nil
		}
		return m, m.deleteCmd(id)

	case key.Matches(msg, m.keys.addItem):
		return m.startForm("")

	case key.Matches(msg, m.keys.editItem):
		id := m.selectedItemID()
		if id == "" {
			return m, nil
		}
		return m.startForm(id)

	case key.Matches(msg, m.keys.itemInfo):
		id := m.selectedItemID()
		if id == "" {
			return m, nil
		}
		m.mode = modeInfo
		m.infoID = id
		return m, nil

	case key.Matches(msg, m.keys.yank):
		return m.yankSelected()

	case key.Matches(msg, m.keys.toggleOffline):
		if m.network == nil {
			return m, nil
		}
		if m.network.Toggle() {
			m.status = "online"
		} else {
			m.status = "offline"
			m.haptics.Emit(haptics.KindWarning)
		}
		return m, nil

	default:
		return m, nil
	}
}

// handleInputModeKey routes keys while an overlay owns the input.
func (m Model) handleInputModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		switch {
		case msg.Code == tea.KeyEscape || msg.String() == "esc":
			m.mode = modeNone
			m.filter().SearchText = m.searchBackup
			m.searchInput.Blur()
			m.status = "search cancelled"
			return m, nil
		case msg.Code == tea.KeyEnter || msg.String() == "enter":
			m.mode = modeNone
			m.searchInput.Blur()
			m.status = "ready"
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.filter().SearchText = m.searchInput.Value()
			m.pageOffset = 0
			m.selected = 0
			return m, cmd
		}

	case modeForm:
		return m.handleFormKey(msg)

	case modeInfo:
		switch msg.String() {
		case "esc", "i", "enter", "q":
			m.mode = modeNone
			m.infoID = ""
			m.status = "ready"
		}
		return m, nil

	default:
		return m, nil
	}
}

// handleFormKey routes keys while the create/edit form is open.
func (m Model) handleFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Code == tea.KeyEscape || msg.String() == "esc":
		m.mode = modeNone
		m.formErrors = nil
		m.editingID = ""
		m.status = "ready"
		return m, nil

	case msg.Code == tea.KeyTab || msg.String() == "tab":
		return m.focusFormField((m.formFocus + 1) % fieldCount)

	case msg.String() == "shift+tab" || msg.String() == "backtab":
		return m.focusFormField((m.formFocus + fieldCount - 1) % fieldCount)

	case msg.String() == "ctrl+p":
		order := priorityCycle()
		m.formPriority = (m.formPriority + 1) % len(order)
		return m, nil

	case msg.Code == tea.KeyEnter || msg.String() == "enter":
		return m, m.submitFormCmd()

	default:
		var cmd tea.Cmd
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		return m, cmd
	}
}

// handleMouseClick begins a drag session on the pressed list row.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNone || m.viewMode != engine.ViewList {
		return m, nil
	}
	row := msg.Y - listHeaderLines
	rows := m.windowRowIDs()
	if row < 0 || row >= len(rows) {
		return m, nil
	}
	m.selected = row
	m.dragRowID = rows[row]
	m.dragStartX = msg.X
	m.swipes.Start(m.dragRowID)
	return m, nil
}

// handleMouseMotion feeds the raw drag delta into the active swipe session.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if m.dragRowID == "" {
		return m, nil
	}
	offset := float64(msg.X-m.dragStartX) * swipeUnitsPerCell
	m.swipes.Update(m.dragRowID, offset)
	return m, nil
}

// handleMouseRelease ends the gesture and dispatches the committed action.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if m.dragRowID == "" {
		return m, nil
	}
	rowID := m.dragRowID
	m.dragRowID = ""
	offset := float64(msg.X-m.dragStartX) * swipeUnitsPerCell
	decision := m.swipes.End(rowID, offset)

	var cmds []tea.Cmd
	if m.swipes.Animating() {
		cmds = append(cmds, m.swipeTick())
	}
	if decision.Committed {
		switch decision.Action {
		case swipe.ActionLeft:
			cmds = append(cmds, m.deleteCmd(rowID))
		case swipe.ActionRight:
			cmds = append(cmds, m.toggleStatusCmd(rowID))
		}
	}
	return m, tea.Batch(cmds...)
}

// handleMouseWheel scrolls the selection.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNone {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		if m.selected > 0 {
			m.selected--
		}
	case tea.MouseWheelDown:
		if m.selected < len(m.windowRows())-1 {
			m.selected++
		}
	}
	return m, nil
}

// loadData refreshes both collections through the coordinator.
func (m Model) loadData() tea.Msg {
	return loadedMsg{err: m.svc.Refresh(context.Background())}
}

// toggleStatusCmd flips the selected item's completion.
func (m Model) toggleStatusCmd(id string) tea.Cmd {
	screen := m.screen
	return func() tea.Msg {
		if screen == screenProjects {
			project, err := m.svc.ToggleProjectStatus(context.Background(), id)
			if err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: "project " + domain.ProjectStatusLabel(project.Status)}
		}
		task, err := m.svc.ToggleTaskStatus(context.Background(), id)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "task " + domain.TaskStatusLabel(task.Status)}
	}
}

// deleteCmd removes the item.
func (m Model) deleteCmd(id string) tea.Cmd {
	screen := m.screen
	return func() tea.Msg {
		var err error
		if screen == screenProjects {
			err = m.svc.DeleteProject(context.Background(), id)
		} else {
			err = m.svc.DeleteTask(context.Background(), id)
		}
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "deleted"}
	}
}

// submitFormCmd builds the draft from the form inputs and saves it.
func (m Model) submitFormCmd() tea.Cmd {
	title := m.formInputs[fieldTitle].Value()
	description := m.formInputs[fieldDescription].Value()
	due := m.formInputs[fieldDue].Value()
	priority := priorityCycle()[m.formPriority]
	screen := m.screen
	editingID := m.editingID

	return func() tea.Msg {
		var err error
		if screen == screenProjects {
			draft := app.ProjectDraft{
				Title:       title,
				Description: description,
				Priority:    priority,
				Due:         due,
			}
			if editingID == "" {
				_, err = m.svc.CreateProject(context.Background(), draft)
			} else {
				_, err = m.svc.UpdateProject(context.Background(), editingID, draft)
			}
		} else {
			draft := app.TaskDraft{
				Title:       title,
				Description: description,
				Priority:    priority,
				Due:         due,
			}
			if editingID == "" {
				_, err = m.svc.CreateTask(context.Background(), draft)
			} else {
				_, err = m.svc.UpdateTask(context.Background(), editingID, draft)
			}
		}
		if err != nil {
			return actionMsg{err: err}
		}
		if editingID == "" {
			return actionMsg{status: "created"}
		}
		return actionMsg{status: "updated"}
	}
}

// swipeTick schedules the next settle frame.
func (m Model) swipeTick() tea.Cmd {
	return tea.Tick(swipeFrameInterval, func(time.Time) tea.Msg {
		return swipeTickMsg{}
	})
}

// startSearchMode opens the search overlay seeded with the applied query.
func (m *Model) startSearchMode() (tea.Model, tea.Cmd) {
	m.mode = modeSearch
	m.searchBackup = m.filter().SearchText
	m.searchInput.SetValue(m.filter().SearchText)
	m.searchInput.CursorEnd()
	m.status = "search"
	return *m, m.searchInput.Focus()
}

// startForm opens the create form, or the edit form when id is set.
func (m *Model) startForm(id string) (tea.Model, tea.Cmd) {
	title, description, due := "", "", ""
	priority := domain.PriorityMedium

	if id != "" {
		if m.screen == screenProjects {
			project, ok := m.projectByID(id)
			if !ok {
				m.status = "item not found"
				return *m, nil
			}
			title, description, priority = project.Title, project.Description, project.Priority
			due = formatDue(project.DueDate)
		} else {
			task, ok := m.taskByID(id)
			if !ok {
				m.status = "item not found"
				return *m, nil
			}
			title, description, priority = task.Title, task.Description, task.Priority
			due = formatDue(task.DueDate)
		}
	}

	m.formInputs = []textinput.Model{
		newFormInput("title: ", "required", title, 120),
		newFormInput("notes: ", "optional", description, 500),
		newFormInput("due:   ", "2006-01-02", due, 10),
	}
	m.formPriority = 0
	for idx, p := range priorityCycle() {
		if p == priority {
			m.formPriority = idx
			break
		}
	}
	m.mode = modeForm
	m.formErrors = nil
	m.editingID = id
	m.formFocus = fieldTitle
	if id == "" {
		m.status = "new item"
	} else {
		m.status = "edit item"
	}
	return *m, m.formInputs[fieldTitle].Focus()
}

// focusFormField moves keyboard focus between form inputs.
func (m *Model) focusFormField(idx int) (tea.Model, tea.Cmd) {
	m.formInputs[m.formFocus].Blur()
	m.formFocus = idx
	return *m, m.formInputs[m.formFocus].Focus()
}

// yankSelected copies the selected item's title to the system clipboard.
func (m *Model) yankSelected() (tea.Model, tea.Cmd) {
	title := ""
	id := m.selectedItemID()
	if m.screen == screenProjects {
		if project, ok := m.projectByID(id); ok {
			title = project.Title
		}
	} else if task, ok := m.taskByID(id); ok {
		title = task.Title
	}
	if title == "" {
		return *m, nil
	}
	if err := clipboard.WriteAll(title); err != nil {
		m.status = "clipboard unavailable"
		return *m, nil
	}
	m.haptics.Emit(haptics.KindSelection)
	m.status = "yanked: " + title
	return *m, nil
}

// filter returns the active screen's filter state.
func (m *Model) filter() *engine.FilterState {
	if m.screen == screenProjects {
		return &m.projectFilter
	}
	return &m.taskFilter
}

// cycleStatusFilter advances the status stage through all -> each status.
func (m *Model) cycleStatusFilter() {
	var keys []string
	if m.screen == screenProjects {
		for _, status := range domain.ProjectStatusOrder() {
			keys = append(keys, string(status))
		}
	} else {
		for _, status := range domain.TaskStatusOrder() {
			keys = append(keys, string(status))
		}
	}
	f := m.filter()
	f.Status = nextCycleValue(f.Status, keys)
	m.pageOffset = 0
	m.selected = 0
	m.status = "status: " + displayFilter(f.Status)
}

// cyclePriorityFilter advances the priority stage.
func (m *Model) cyclePriorityFilter() {
	var keys []string
	for _, p := range priorityCycle() {
		keys = append(keys, string(p))
	}
	f := m.filter()
	f.Priority = nextCycleValue(f.Priority, keys)
	m.pageOffset = 0
	m.selected = 0
	m.status = "priority: " + displayFilter(f.Priority)
}

// cycleScopeFilter advances the project-scope stage; it only applies to the
// task screen.
func (m *Model) cycleScopeFilter() {
	if m.screen != screenTasks {
		return
	}
	keys := make([]string, 0, len(m.projects))
	for _, project := range m.projects {
		keys = append(keys, project.ID)
	}
	f := m.filter()
	f.Scope = nextCycleValue(f.Scope, keys)
	m.pageOffset = 0
	m.selected = 0
	if f.Scope == "" || f.Scope == engine.FilterAll {
		m.status = "project: all"
	} else if project, ok := m.projectByID(f.Scope); ok {
		m.status = "project: " + project.Title
	}
}

// cycleSortKey advances the sort comparator.
func (m *Model) cycleSortKey() {
	order := []engine.SortKey{engine.SortNone, engine.SortDueDate, engine.SortPriority, engine.SortStatus, engine.SortTitle}
	f := m.filter()
	for idx, sortKey := range order {
		if f.Sort == sortKey {
			f.Sort = order[(idx+1)%len(order)]
			break
		}
	}
	if f.Sort == engine.SortNone {
		m.status = "sort: none"
	} else {
		m.status = "sort: " + string(f.Sort)
	}
}

// nextCycleValue steps "" -> keys[0] -> ... -> keys[last] -> "".
func nextCycleValue(current string, keys []string) string {
	if current == "" || current == engine.FilterAll {
		if len(keys) == 0 {
			return ""
		}
		return keys[0]
	}
	for idx, key := range keys {
		if key == current && idx+1 < len(keys) {
			return keys[idx+1]
		}
	}
	return ""
}

func displayFilter(value string) string {
	if value == "" || value == engine.FilterAll {
		return "all"
	}
	return value
}

// priorityCycle is the form/filter priority order, most common first.
func priorityCycle() []domain.Priority {
	return []domain.Priority{domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical, domain.PriorityLow}
}

// visibleTasks derives the task screen's visible collection.
func (m Model) visibleTasks() []domain.Task {
	return engine.DeriveVisible(m.tasks, m.taskFilter)
}

// visibleProjects derives the project screen's visible collection.
func (m Model) visibleProjects() []domain.Project {
	return engine.DeriveVisible(m.projects, m.projectFilter)
}

func (m Model) visibleCount() int {
	if m.screen == screenProjects {
		return len(m.visibleProjects())
	}
	return len(m.visibleTasks())
}

// window is the active pagination slice.
func (m Model) window() engine.Window {
	return engine.Window{Offset: m.pageOffset, Size: m.pageSize}
}

// windowRowIDs returns the ids of the rows currently on screen, in order.
func (m Model) windowRowIDs() []string {
	if m.screen == screenProjects {
		pres := engine.Present(m.visibleProjects(), engine.ViewList, m.window(), nil)
		ids := make([]string, len(pres.Rows))
		for idx, row := range pres.Rows {
			ids[idx] = row.ID
		}
		return ids
	}
	pres := engine.Present(m.visibleTasks(), engine.ViewList, m.window(), nil)
	ids := make([]string, len(pres.Rows))
	for idx, row := range pres.Rows {
		ids[idx] = row.ID
	}
	return ids
}

// windowRows is windowRowIDs sized for selection clamping. In board mode the
// selection walks the whole visible collection instead of a window.
func (m Model) windowRows() []string {
	if m.viewMode == engine.ViewBoard {
		count := m.visibleCount()
		ids := make([]string, count)
		return ids
	}
	return m.windowRowIDs()
}

// selectedItemID resolves the selection to an item id.
func (m Model) selectedItemID() string {
	if m.viewMode == engine.ViewBoard {
		if m.screen == screenProjects {
			visible := m.visibleProjects()
			if m.selected >= 0 && m.selected < len(visible) {
				return visible[m.selected].ID
			}
			return ""
		}
		visible := m.visibleTasks()
		if m.selected >= 0 && m.selected < len(visible) {
			return visible[m.selected].ID
		}
		return ""
	}
	ids := m.windowRowIDs()
	if m.selected >= 0 && m.selected < len(ids) {
		return ids[m.selected]
	}
	return ""
}

func (m *Model) clampSelection() {
	rows := len(m.windowRows())
	if rows == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected, 0), rows-1)
}

func (m Model) taskByID(id string) (domain.Task, bool) {
	for _, task := range m.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

func (m Model) projectByID(id string) (domain.Project, bool) {
	for _, project := range m.projects {
		if project.ID == id {
			return project, true
		}
	}
	return domain.Project{}, false
}

// newFormInput constructs one form field.
func newFormInput(prompt, placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = limit
	if value != "" {
		in.SetValue(value)
	}
	return in
}

// formatDue renders a due date for form editing.
func formatDue(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format("2006-01-02")
}

// offline reports whether the network collaborator says we are disconnected.
func (m Model) offline() bool {
	return m.network != nil && !m.network.Connected()
}

// filterSummary renders the active filter stages for the footer.
func (m Model) filterSummary() string {
	f := *m.filter()
	var parts []string
	if strings.TrimSpace(f.SearchText) != "" {
		parts = append(parts, "search:"+f.SearchText)
	}
	if f.Status != "" && f.Status != engine.FilterAll {
		parts = append(parts, "status:"+f.Status)
	}
	if f.Priority != "" && f.Priority != engine.FilterAll {
		parts = append(parts, "priority:"+f.Priority)
	}
	if f.Scope != "" && f.Scope != engine.FilterAll {
		scope := f.Scope
		if project, ok := m.projectByID(f.Scope); ok {
			scope = project.Title
		}
		parts = append(parts, "project:"+scope)
	}
	if f.Sort != engine.SortNone {
		parts = append(parts, "sort:"+string(f.Sort))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}
