package service

import (
	"context"
	"testing"
	"time"
)

func TestDropTaskOnPlanner_DuplicateDropIsNoOp(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, newProject("u1", "Mural"))
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	task, err := svc.CreateTask(ctx, newTask("u1", project.ID, "Sketch wall"))
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	first, err := svc.DropTaskOnPlanner(ctx, "u1", task.ID, "2024-03-05")
	if err != nil {
		t.Fatalf("first drop: %v", err)
	}
	second, err := svc.DropTaskOnPlanner(ctx, "u1", task.ID, "2024-03-05")
	if err != nil {
		t.Fatalf("second drop: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("duplicate drop created a new entry: %d vs %d", second.ID, first.ID)
	}
	if len(f.planner.items) != 1 {
		t.Errorf("expected 1 planner entry, got %d", len(f.planner.items))
	}

	// Same task on another day is a separate entry.
	third, err := svc.DropTaskOnPlanner(ctx, "u1", task.ID, "2024-03-06")
	if err != nil {
		t.Fatalf("third drop: %v", err)
	}
	if third.ID == first.ID {
		t.Error("drop on another day reused the existing entry")
	}
}

func TestMoveDailyTask_DuplicateTargetIsNoOp(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	project, _ := svc.CreateProject(ctx, newProject("u1", "Mural"))
	task, _ := svc.CreateTask(ctx, newTask("u1", project.ID, "Sketch wall"))

	monday, err := svc.DropTaskOnPlanner(ctx, "u1", task.ID, "2024-03-04")
	if err != nil {
		t.Fatalf("drop monday: %v", err)
	}
	tuesday, err := svc.DropTaskOnPlanner(ctx, "u1", task.ID, "2024-03-05")
	if err != nil {
		t.Fatalf("drop tuesday: %v", err)
	}

	// Moving monday's entry onto tuesday would duplicate the source task
	// there, so the existing tuesday entry is returned untouched.
	moved, err := svc.MoveDailyTask(ctx, "u1", monday.ID, "2024-03-05")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.ID != tuesday.ID {
		t.Errorf("expected existing entry %d, got %d", tuesday.ID, moved.ID)
	}

	stillMonday, err := svc.Planner.GetByID(ctx, monday.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stillMonday.PlanDate != "2024-03-04" {
		t.Errorf("source entry moved despite duplicate: %s", stillMonday.PlanDate)
	}
}

func TestToggleDailyTask_SyncsSourceTask(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	project, _ := svc.CreateProject(ctx, newProject("u1", "Mural"))
	task, _ := svc.CreateTask(ctx, newTask("u1", project.ID, "Sketch wall"))
	entry, _ := svc.DropTaskOnPlanner(ctx, "u1", task.ID, "2024-03-05")

	toggled, err := svc.ToggleDailyTask(ctx, "u1", entry.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Error("entry not completed after toggle")
	}
	source, _ := svc.Tasks.GetByID(ctx, task.ID)
	if !source.Completed {
		t.Error("source task not synced")
	}
}

func TestRolloverPlanner_MovesOnlyIncompletePastEntries(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 10, 0, 0, time.UTC)
	svc, f := newTestService(now)
	ctx := context.Background()

	mustAdd := func(text, date string, completed bool) {
		entry, err := svc.AddDailyTask(ctx, "u1", date, text)
		if err != nil {
			t.Fatalf("add %s: %v", text, err)
		}
		if completed {
			if _, err := svc.ToggleDailyTask(ctx, "u1", entry.ID); err != nil {
				t.Fatalf("toggle %s: %v", text, err)
			}
		}
	}
	mustAdd("old open", "2024-03-03", false)
	mustAdd("old done", "2024-03-03", true)
	mustAdd("today", "2024-03-05", false)
	mustAdd("future", "2024-03-07", false)

	if err := svc.RolloverPlanner(ctx); err != nil {
		t.Fatalf("rollover: %v", err)
	}

	byText := make(map[string]string)
	for _, e := range f.planner.items {
		byText[e.Text] = e.PlanDate
	}
	if byText["old open"] != "2024-03-05" {
		t.Errorf("incomplete past entry not moved: %s", byText["old open"])
	}
	if byText["old done"] != "2024-03-03" {
		t.Errorf("completed entry moved: %s", byText["old done"])
	}
	if byText["future"] != "2024-03-07" {
		t.Errorf("future entry moved: %s", byText["future"])
	}

	// Running again the same day changes nothing.
	if err := svc.RolloverPlanner(ctx); err != nil {
		t.Fatalf("second rollover: %v", err)
	}
	if byText["old open"] != "2024-03-05" {
		t.Errorf("second rollover changed plan date: %s", byText["old open"])
	}
}

func TestRolloverUserPlanner_MovesOnlyThatUser(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	svc, f := newTestService(now)
	ctx := context.Background()

	if _, err := svc.AddDailyTask(ctx, "u1", "2024-03-03", "stale mine"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddDailyTask(ctx, "u2", "2024-03-03", "stale theirs"); err != nil {
		t.Fatalf("add: %v", err)
	}

	moved, err := svc.RolloverUserPlanner(ctx, "u1")
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if moved != 1 {
		t.Errorf("moved = %d, want 1", moved)
	}

	byText := make(map[string]string)
	for _, e := range f.planner.items {
		byText[e.Text] = e.PlanDate
	}
	if byText["stale mine"] != "2024-03-05" {
		t.Errorf("caller's entry not moved: %s", byText["stale mine"])
	}
	if byText["stale theirs"] != "2024-03-03" {
		t.Errorf("other user's entry moved: %s", byText["stale theirs"])
	}

	// Nothing left to move on a second pass.
	moved, err = svc.RolloverUserPlanner(ctx, "u1")
	if err != nil {
		t.Fatalf("second rollover: %v", err)
	}
	if moved != 0 {
		t.Errorf("second rollover moved %d, want 0", moved)
	}
}
