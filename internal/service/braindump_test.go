package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConvertThoughtToTask(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC))

	project, err := svc.CreateProject(context.Background(), newProject("u1", "Mural"))
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	item, err := svc.CaptureThought(context.Background(), "u1", "sketch the left wall")
	if err != nil {
		t.Fatalf("CaptureThought: %v", err)
	}

	task, err := svc.ConvertThoughtToTask(context.Background(), "u1", item.ID, project.ID)
	if err != nil {
		t.Fatalf("ConvertThoughtToTask: %v", err)
	}
	if task.Name != "sketch the left wall" || task.ProjectID != project.ID {
		t.Errorf("task = %+v, want thought text in project %d", task, project.ID)
	}

	left, err := f.brainDump.GetByUserID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("inbox has %d items after convert, want 0", len(left))
	}
}

func TestConvertThoughtToProject(t *testing.T) {
	svc, f := newTestService(time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC))

	item, err := svc.CaptureThought(context.Background(), "u1", "start a zine")
	if err != nil {
		t.Fatalf("CaptureThought: %v", err)
	}

	project, err := svc.ConvertThoughtToProject(context.Background(), "u1", item.ID, "publishing")
	if err != nil {
		t.Fatalf("ConvertThoughtToProject: %v", err)
	}
	if project.Name != "start a zine" || project.Category != "publishing" {
		t.Errorf("project = %+v, want name from thought", project)
	}

	left, _ := f.brainDump.GetByUserID(context.Background(), "u1")
	if len(left) != 0 {
		t.Errorf("inbox has %d items after promote, want 0", len(left))
	}
}

func TestConvertThoughtWrongUser(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC))

	item, err := svc.CaptureThought(context.Background(), "u1", "private idea")
	if err != nil {
		t.Fatalf("CaptureThought: %v", err)
	}
	if _, err := svc.ConvertThoughtToProject(context.Background(), "u2", item.ID, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user convert error = %v, want ErrNotFound", err)
	}
}

func TestCaptureThoughtRequiresText(t *testing.T) {
	svc, _ := newTestService(time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC))

	if _, err := svc.CaptureThought(context.Background(), "u1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank thought error = %v, want ErrInvalidInput", err)
	}
}
