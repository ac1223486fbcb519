package service

import (
	"context"
	"testing"
	"time"
)

func TestReorderProjects_SpliceBeforeTarget(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"A", "B", "C", "D"} {
		p, err := svc.CreateProject(ctx, newProject("u1", name))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		ids = append(ids, p.ID)
	}

	// Drag D before B: expected order A, D, B, C.
	if err := svc.ReorderProjects(ctx, "u1", ids[3], ids[1], true); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	order := make(map[string]int)
	for _, p := range f.projects.items {
		order[p.Name] = p.SortOrder
	}
	want := map[string]int{"A": 0, "D": 1, "B": 2, "C": 3}
	for name, idx := range want {
		if order[name] != idx {
			t.Errorf("%s: expected order %d, got %d", name, idx, order[name])
		}
	}
}

func TestReorderProjects_DraggingOntoItselfIsNoOp(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	p, _ := svc.CreateProject(ctx, newProject("u1", "A"))
	if err := svc.ReorderProjects(ctx, "u1", p.ID, p.ID, true); err != nil {
		t.Fatalf("self reorder: %v", err)
	}
	if f.projects.items[0].SortOrder != 0 {
		t.Errorf("self drag changed order to %d", f.projects.items[0].SortOrder)
	}
}

func TestToggleObjective_StampsCompletionTime(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := context.Background()

	p, _ := svc.CreateProject(ctx, newProject("u1", "Mural"))
	p, err := svc.AddObjective(ctx, "u1", p.ID, "Finish underpainting")
	if err != nil {
		t.Fatalf("add objective: %v", err)
	}

	p, err = svc.ToggleObjective(ctx, "u1", p.ID, p.Objectives[0].ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !p.Objectives[0].Completed {
		t.Fatal("objective not completed")
	}
	if p.Objectives[0].CompletedAt == nil || !p.Objectives[0].CompletedAt.Equal(now) {
		t.Errorf("completion time not stamped: %v", p.Objectives[0].CompletedAt)
	}

	p, err = svc.ToggleObjective(ctx, "u1", p.ID, p.Objectives[0].ID)
	if err != nil {
		t.Fatalf("untoggle: %v", err)
	}
	if p.Objectives[0].Completed || p.Objectives[0].CompletedAt != nil {
		t.Error("untoggle did not clear completion")
	}
}

func TestCreateFromTemplate_RecreatesTaskList(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	source, _ := svc.CreateProject(ctx, newProject("u1", "Zine"))
	for _, name := range []string{"Thumbnails", "Inking", "Print run"} {
		if _, err := svc.CreateTask(ctx, newTask("u1", source.ID, name)); err != nil {
			t.Fatalf("create task %s: %v", name, err)
		}
	}

	tmpl, err := svc.SaveAsTemplate(ctx, "u1", source.ID)
	if err != nil {
		t.Fatalf("save template: %v", err)
	}
	if len(tmpl.Tasks) != 3 {
		t.Fatalf("expected 3 template tasks, got %d", len(tmpl.Tasks))
	}

	clone, err := svc.CreateFromTemplate(ctx, "u1", tmpl.ID, "Zine vol. 2")
	if err != nil {
		t.Fatalf("create from template: %v", err)
	}
	cloneTasks, _ := svc.Tasks.GetByProjectID(ctx, clone.ID)
	if len(cloneTasks) != 3 {
		t.Fatalf("expected 3 cloned tasks, got %d", len(cloneTasks))
	}
	for i, name := range []string{"Thumbnails", "Inking", "Print run"} {
		if cloneTasks[i].Name != name || cloneTasks[i].SortOrder != i {
			t.Errorf("task %d: got %q order %d", i, cloneTasks[i].Name, cloneTasks[i].SortOrder)
		}
	}
}
