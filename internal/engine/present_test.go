package engine

import (
	"testing"

	"github.com/hylla/listan/internal/domain"
)

func boardTasks(t *testing.T) []domain.Task {
	t.Helper()
	return []domain.Task{
		mustTask(t, "t1", "one", domain.TaskStatusInProgress, domain.PriorityHigh, nil, "", ""),
		mustTask(t, "t2", "two", domain.TaskStatusTodo, domain.PriorityLow, nil, "", ""),
		mustTask(t, "t3", "three", domain.TaskStatusInProgress, domain.PriorityMedium, nil, "", ""),
		mustTask(t, "t4", "four", domain.TaskStatusCompleted, domain.PriorityMedium, nil, "", ""),
	}
}

func TestNextViewModeCycles(t *testing.T) {
	if NextViewMode(ViewList) != ViewGrid {
		t.Fatal("list -> grid")
	}
	if NextViewMode(ViewGrid) != ViewBoard {
		t.Fatal("grid -> board")
	}
	if NextViewMode(ViewBoard) != ViewList {
		t.Fatal("board -> list")
	}
	if NextViewMode(ViewMode("bogus")) != ViewList {
		t.Fatal("unknown -> list")
	}
}

func TestPresentBoardPartitionsByStatus(t *testing.T) {
	tasks := boardTasks(t)
	pres := Present(tasks, ViewBoard, Window{}, TaskBoardColumns())

	if len(pres.Columns) != 4 {
		t.Fatalf("expected 4 fixed columns, got %d", len(pres.Columns))
	}
	// Fixed order comes from the domain, not from the data.
	wantKeys := []string{"todo", "in_progress", "blocked", "completed"}
	for i, want := range wantKeys {
		if pres.Columns[i].Key != want {
			t.Fatalf("column %d key = %q, want %q", i, pres.Columns[i].Key, want)
		}
	}

	// Union of columns equals the visible set, within-column order preserved.
	total := 0
	for _, col := range pres.Columns {
		total += len(col.Items)
	}
	if total != len(tasks) {
		t.Fatalf("columns hold %d items, want %d", total, len(tasks))
	}
	inProgress := pres.Columns[1].Items
	if !equalIDs(ids(inProgress), "t1", "t3") {
		t.Fatalf("in_progress column = %v", ids(inProgress))
	}
	// Empty statuses still render a column.
	if len(pres.Columns[2].Items) != 0 {
		t.Fatalf("blocked column should be empty, got %v", ids(pres.Columns[2].Items))
	}
}

func TestPresentBoardSkipsUnknownStatus(t *testing.T) {
	tasks := boardTasks(t)
	columns := []ColumnSpec{{Key: "todo", Title: "To Do"}}
	pres := Present(tasks, ViewBoard, Window{}, columns)
	if len(pres.Columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(pres.Columns))
	}
	if !equalIDs(ids(pres.Columns[0].Items), "t2") {
		t.Fatalf("todo column = %v", ids(pres.Columns[0].Items))
	}
}

func TestPresentListAppliesWindow(t *testing.T) {
	tasks := boardTasks(t)
	pres := Present(tasks, ViewList, Window{Offset: 1, Size: 2}, nil)
	if !equalIDs(ids(pres.Rows), "t2", "t3") {
		t.Fatalf("window rows = %v", ids(pres.Rows))
	}
	if pres.Total != 4 {
		t.Fatalf("total = %d, want 4", pres.Total)
	}
}

func TestPresentWindowClampsOutOfRange(t *testing.T) {
	tasks := boardTasks(t)
	pres := Present(tasks, ViewList, Window{Offset: 99, Size: 2}, nil)
	if len(pres.Rows) != 0 {
		t.Fatalf("expected no rows, got %v", ids(pres.Rows))
	}
	pres = Present(tasks, ViewList, Window{Offset: -5, Size: 0}, nil)
	if len(pres.Rows) != 4 {
		t.Fatalf("zero size means everything, got %d rows", len(pres.Rows))
	}
}

func TestPresentModeSwitchNeverAltersVisibleSet(t *testing.T) {
	tasks := boardTasks(t)
	visible := DeriveVisible(tasks, FilterState{Priority: FilterAll})

	list := Present(visible, ViewList, Window{}, nil)
	grid := Present(visible, ViewGrid, Window{}, nil)
	board := Present(visible, ViewBoard, Window{}, TaskBoardColumns())

	if list.Total != grid.Total || grid.Total != board.Total {
		t.Fatalf("totals diverge: %d %d %d", list.Total, grid.Total, board.Total)
	}
	if !equalIDs(ids(list.Rows), ids(grid.Rows)...) {
		t.Fatalf("list %v vs grid %v", ids(list.Rows), ids(grid.Rows))
	}
	var flattened []string
	for _, col := range board.Columns {
		flattened = append(flattened, ids(col.Items)...)
	}
	if len(flattened) != len(visible) {
		t.Fatalf("board flattening lost items: %v", flattened)
	}
}

func TestProjectBoardColumnsUseDomainOrder(t *testing.T) {
	columns := ProjectBoardColumns()
	wantKeys := []string{"not_started", "in_progress", "on_hold", "completed"}
	if len(columns) != len(wantKeys) {
		t.Fatalf("expected %d columns, got %d", len(wantKeys), len(columns))
	}
	for i, want := range wantKeys {
		if columns[i].Key != want {
			t.Fatalf("column %d key = %q, want %q", i, columns[i].Key, want)
		}
		if columns[i].Title == "" {
			t.Fatalf("column %d missing title", i)
		}
	}
}
