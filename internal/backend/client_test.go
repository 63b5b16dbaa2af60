package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hylla/listan/internal/domain"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	return New(Config{}, SeedSnapshot(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)), nil)
}

func TestFetchSnapshotReturnsCopy(t *testing.T) {
	c := newTestClient(t)

	first, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if len(first.Projects) == 0 || len(first.Tasks) == 0 {
		t.Fatal("seed snapshot is empty")
	}

	// Mutating the returned slices must not leak into the dataset.
	first.Tasks[0].Title = "tampered"
	second, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	if second.Tasks[0].Title == "tampered" {
		t.Fatal("fetch handed out internal state")
	}
}

func TestSaveTaskUpsertsDataset(t *testing.T) {
	c := newTestClient(t)
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	task, err := domain.NewTask(domain.TaskInput{ID: "t-new", Title: "brand new"}, now)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	if err := c.SaveTask(context.Background(), task); err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}
	snap, err := c.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot() error = %v", err)
	}
	found := false
	for _, rec := range snap.Tasks {
		if rec.ID == "t-new" {
			found = true
			if rec.Status != "todo" {
				t.Fatalf("unexpected status %q", rec.Status)
			}
		}
	}
	if !found {
		t.Fatal("saved task not in later fetch")
	}

	// Saving again replaces, not duplicates.
	task.Title = "renamed"
	if err := c.SaveTask(context.Background(), task); err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}
	snap, _ = c.FetchSnapshot(context.Background())
	count := 0
	for _, rec := range snap.Tasks {
		if rec.ID == "t-new" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}
}

func TestDeleteTaskRemovesRecord(t *testing.T) {
	c := newTestClient(t)
	if err := c.DeleteTask(context.Background(), "t-1"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	snap, _ := c.FetchSnapshot(context.Background())
	for _, rec := range snap.Tasks {
		if rec.ID == "t-1" {
			t.Fatal("t-1 still present")
		}
	}
}

func TestFailNextInjectsDeterministically(t *testing.T) {
	c := newTestClient(t)
	c.FailNext(2)

	if _, err := c.FetchSnapshot(context.Background()); !errors.Is(err, ErrSimulated) {
		t.Fatalf("expected ErrSimulated, got %v", err)
	}
	if err := c.DeleteTask(context.Background(), "t-1"); !errors.Is(err, ErrSimulated) {
		t.Fatalf("expected ErrSimulated, got %v", err)
	}
	if _, err := c.FetchSnapshot(context.Background()); err != nil {
		t.Fatalf("third call should succeed, got %v", err)
	}
}

func TestRoundTripHonorsContextDuringLatency(t *testing.T) {
	c := New(Config{Latency: 5 * time.Second}, SeedSnapshot(time.Now()), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.FetchSnapshot(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancellation not honored, took %v", elapsed)
	}
}

func TestFailureRateIsSeedReproducible(t *testing.T) {
	run := func() []bool {
		c := New(Config{FailureRate: 0.5, Seed: 42}, SeedSnapshot(time.Now()), nil)
		out := make([]bool, 20)
		for i := range out {
			_, err := c.FetchSnapshot(context.Background())
			out[i] = err != nil
		}
		return out
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence diverged at call %d", i)
		}
	}
}

func TestSeedSnapshotShapes(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	snap := SeedSnapshot(now)

	names := domain.ProjectNameIndex(snap.Projects)
	sawDangling := false
	for _, rec := range snap.Tasks {
		task, err := domain.NormalizeTask(rec, names)
		if err != nil {
			t.Fatalf("seed task %s invalid: %v", rec.ID, err)
		}
		if task.ProjectName == domain.UnknownProjectName {
			sawDangling = true
		}
	}
	for _, rec := range snap.Projects {
		if _, err := domain.NormalizeProject(rec); err != nil {
			t.Fatalf("seed project %s invalid: %v", rec.ID, err)
		}
	}
	if !sawDangling {
		t.Fatal("seed should exercise the dangling project reference path")
	}
}

func TestNetStatusToggle(t *testing.T) {
	n := NewNetStatus(true)
	if !n.Connected() {
		t.Fatal("expected connected")
	}
	if n.Toggle() {
		t.Fatal("toggle should report the new state: disconnected")
	}
	if n.Connected() {
		t.Fatal("expected disconnected")
	}
	n.SetConnected(true)
	if !n.Connected() {
		t.Fatal("expected connected after SetConnected")
	}
}
