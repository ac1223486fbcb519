package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artflow/artflow/internal/llm"
	"github.com/artflow/artflow/internal/repository"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request fails validation.
var ErrInvalidInput = errors.New("invalid input")

// Service is the central business logic layer that holds all repositories
// and provides high-level methods for the application.
type Service struct {
	db     *sql.DB
	logger *logrus.Logger
	ai     llm.TextGenerator

	Projects   repository.ProjectRepository
	Templates  repository.TemplateRepository
	Tasks      repository.TaskRepository
	Events     repository.EventRepository
	Exceptions repository.ExceptionRepository
	Labels     repository.LabelRepository
	DayNotes   repository.DayNoteRepository
	Planner    repository.DailyTaskRepository
	Habits     repository.HabitRepository
	Goals      repository.GoalRepository
	BrainDump  repository.BrainDumpRepository
	Payments   repository.PaymentRepository
	Missions   repository.MissionRepository
	Summaries  repository.SummaryRepository

	// now is swapped out in tests.
	now func() time.Time
}

// New creates a new Service with all required dependencies.
func New(db *sql.DB, logger *logrus.Logger, ai llm.TextGenerator,
	projects repository.ProjectRepository,
	templates repository.TemplateRepository,
	tasks repository.TaskRepository,
	events repository.EventRepository,
	exceptions repository.ExceptionRepository,
	labels repository.LabelRepository,
	dayNotes repository.DayNoteRepository,
	planner repository.DailyTaskRepository,
	habits repository.HabitRepository,
	goals repository.GoalRepository,
	brainDump repository.BrainDumpRepository,
	payments repository.PaymentRepository,
	missions repository.MissionRepository,
	summaries repository.SummaryRepository,
) *Service {
	return &Service{
		db: db, logger: logger, ai: ai,
		Projects: projects, Templates: templates, Tasks: tasks,
		Events: events, Exceptions: exceptions, Labels: labels,
		DayNotes: dayNotes, Planner: planner, Habits: habits,
		Goals: goals, BrainDump: brainDump, Payments: payments,
		Missions: missions, Summaries: summaries,
		now: time.Now,
	}
}
