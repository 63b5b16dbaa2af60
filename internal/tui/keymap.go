package tui

import "charm.land/bubbles/v2/key"

// keyMap represents key map data used by this package.
type keyMap struct {
	quit           key.Binding
	refresh        key.Binding
	toggleHelp     key.Binding
	moveUp         key.Binding
	moveDown       key.Binding
	pagePrev       key.Binding
	pageNext       key.Binding
	cycleView      key.Binding
	switchScreen   key.Binding
	search         key.Binding
	statusFilter   key.Binding
	priorityFilter key.Binding
	scopeFilter    key.Binding
	sortKey        key.Binding
	clearFilters   key.Binding
	toggleDone     key.Binding
	deleteItem     key.Binding
	addItem        key.Binding
	editItem       key.Binding
	itemInfo       key.Binding
	yank           key.Binding
	toggleOffline  key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		refresh:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		toggleHelp:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		moveUp:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "row up")),
		moveDown:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "row down")),
		pagePrev:       key.NewBinding(key.WithKeys("["), key.WithHelp("[", "page back")),
		pageNext:       key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "page forward")),
		cycleView:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view mode")),
		switchScreen:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tasks/projects")),
		search:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		statusFilter:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status filter")),
		priorityFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "priority filter")),
		scopeFilter:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "project filter")),
		sortKey:        key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort key")),
		clearFilters:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "clear filters")),
		toggleDone:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
		deleteItem:     key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "delete")),
		addItem:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new item")),
		editItem:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit item")),
		itemInfo:       key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i/enter", "item info")),
		yank:           key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank title")),
		toggleOffline:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle offline")),
	}
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.search, k.cycleView, k.toggleDone, k.addItem, k.refresh, k.toggleHelp, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.moveUp, k.moveDown, k.pagePrev, k.pageNext, k.switchScreen, k.cycleView},
		{k.search, k.statusFilter, k.priorityFilter, k.scopeFilter, k.sortKey, k.clearFilters},
		{k.toggleDone, k.deleteItem, k.addItem, k.editItem, k.itemInfo, k.yank},
		{k.refresh, k.toggleOffline, k.toggleHelp, k.quit},
	}
}
