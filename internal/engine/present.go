package engine

import "github.com/hylla/listan/internal/domain"

// ViewMode selects the presentation grouping for a visible collection.
// Changing it never alters the filtered set, only its shape.
type ViewMode string

// Supported view modes.
const (
	ViewList  ViewMode = "list"
	ViewGrid  ViewMode = "grid"
	ViewBoard ViewMode = "board"
)

// NextViewMode cycles list -> grid -> board -> list.
func NextViewMode(mode ViewMode) ViewMode {
	switch mode {
	case ViewList:
		return ViewGrid
	case ViewGrid:
		return ViewBoard
	default:
		return ViewList
	}
}

// ColumnSpec defines one fixed board column. Columns come from the domain,
// never from the data: a status with zero items still renders a column.
type ColumnSpec struct {
	Key   string
	Title string
}

// Window is the pagination slice applied in list and grid modes.
type Window struct {
	Offset int
	Size   int
}

// BoardColumn is one populated board column.
type BoardColumn[T Item] struct {
	Key   string
	Title string
	Items []T
}

// Presentation is the shaped output handed to rendering code.
type Presentation[T Item] struct {
	Mode    ViewMode
	Rows    []T
	Columns []BoardColumn[T]
	Total   int
	Window  Window
}

// Present reshapes the visible collection for a view mode. It is a pure
// re-presentation: no filtering, fetching, or filter-state changes happen
// here. In board mode the within-column order preserves the DeriveVisible
// order; in list and grid modes the rows are the window slice.
func Present[T Item](visible []T, mode ViewMode, window Window, columns []ColumnSpec) Presentation[T] {
	out := Presentation[T]{Mode: mode, Total: len(visible), Window: window}

	if mode == ViewBoard {
		byKey := make(map[string]int, len(columns))
		out.Columns = make([]BoardColumn[T], len(columns))
		for i, col := range columns {
			out.Columns[i] = BoardColumn[T]{Key: col.Key, Title: col.Title}
			byKey[col.Key] = i
		}
		for _, item := range visible {
			idx, ok := byKey[item.StatusKey()]
			if !ok {
				continue
			}
			out.Columns[idx].Items = append(out.Columns[idx].Items, item)
		}
		return out
	}

	out.Rows = windowSlice(visible, window)
	return out
}

// windowSlice clamps the window to the collection bounds. A zero or negative
// size means "everything from the offset".
func windowSlice[T Item](items []T, window Window) []T {
	start := window.Offset
	if start < 0 {
		start = 0
	}
	if start > len(items) {
		start = len(items)
	}
	end := len(items)
	if window.Size > 0 && start+window.Size < end {
		end = start + window.Size
	}
	return items[start:end]
}

// TaskBoardColumns returns the fixed column layout for task boards.
func TaskBoardColumns() []ColumnSpec {
	order := domain.TaskStatusOrder()
	out := make([]ColumnSpec, 0, len(order))
	for _, status := range order {
		out = append(out, ColumnSpec{Key: string(status), Title: domain.TaskStatusLabel(status)})
	}
	return out
}

// ProjectBoardColumns returns the fixed column layout for project boards.
func ProjectBoardColumns() []ColumnSpec {
	order := domain.ProjectStatusOrder()
	out := make([]ColumnSpec, 0, len(order))
	for _, status := range order {
		out = append(out, ColumnSpec{Key: string(status), Title: domain.ProjectStatusLabel(status)})
	}
	return out
}
