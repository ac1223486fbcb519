package repository

import (
	"context"

	"github.com/artflow/artflow/internal/models"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	UpdateOrders(ctx context.Context, userID string, orders map[int64]int) error
	// Delete removes the project and all of its tasks in one transaction.
	Delete(ctx context.Context, id int64) error
}

// TemplateRepository defines the interface for project template operations
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *models.ProjectTemplate) (*models.ProjectTemplate, error)
	GetByID(ctx context.Context, id int64) (*models.ProjectTemplate, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.ProjectTemplate, error)
	Delete(ctx context.Context, id int64) error
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// CreateBatch inserts all tasks in one transaction; used when
	// instantiating a project from a template.
	CreateBatch(ctx context.Context, tasks []*models.Task) ([]*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetByProjectID(ctx context.Context, projectID int64) ([]*models.Task, error)
	GetByUserID(ctx context.Context, userID string, filters TaskFilters) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateOrders(ctx context.Context, projectID int64, orders map[int64]int) error
	Delete(ctx context.Context, id int64) error
}

// EventRepository defines the interface for calendar event operations
type EventRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) (*models.CalendarEvent, error)
	GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.CalendarEvent, error)
	Update(ctx context.Context, event *models.CalendarEvent) (*models.CalendarEvent, error)
	// Delete removes the event together with its exceptions in one
	// transaction so no orphaned exceptions survive.
	Delete(ctx context.Context, id int64) error
}

// ExceptionRepository defines the interface for per-occurrence overrides
type ExceptionRepository interface {
	Create(ctx context.Context, exception *models.EventException) (*models.EventException, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.EventException, error)
	GetByParentAndDate(ctx context.Context, parentID int64, dateID string) (*models.EventException, error)
	Update(ctx context.Context, exception *models.EventException) (*models.EventException, error)
	Delete(ctx context.Context, id int64) error
}

// LabelRepository defines the interface for calendar label operations
type LabelRepository interface {
	Create(ctx context.Context, label *models.Label) (*models.Label, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Label, error)
	Delete(ctx context.Context, id int64) error
}

// DayNoteRepository defines the interface for per-day notes
type DayNoteRepository interface {
	// Upsert stores the note for (userID, dateID), replacing any previous
	// text. An empty note deletes the row instead.
	Upsert(ctx context.Context, note *models.DayNote) (*models.DayNote, error)
	GetByDate(ctx context.Context, userID, dateID string) (*models.DayNote, error)
	GetByMonth(ctx context.Context, userID, monthID string) ([]*models.DayNote, error)
}

// DailyTaskRepository defines the interface for planner entries
type DailyTaskRepository interface {
	Create(ctx context.Context, task *models.DailyTask) (*models.DailyTask, error)
	GetByID(ctx context.Context, id int64) (*models.DailyTask, error)
	GetByPlanDate(ctx context.Context, userID, planDate string) ([]*models.DailyTask, error)
	// GetByOriginalTask returns the entry sourced from the given project
	// task on the given plan date, or nil when none exists.
	GetByOriginalTask(ctx context.Context, userID string, originalTaskID int64, planDate string) (*models.DailyTask, error)
	Update(ctx context.Context, task *models.DailyTask) (*models.DailyTask, error)
	Delete(ctx context.Context, id int64) error
	// Rollover moves every incomplete entry dated before today onto
	// today's plan in one statement and reports how many rows moved.
	Rollover(ctx context.Context, userID, today string) (int64, error)
	RolloverAll(ctx context.Context, today string) (int64, error)
}

// HabitRepository defines the interface for habit data operations
type HabitRepository interface {
	Create(ctx context.Context, habit *models.Habit) (*models.Habit, error)
	GetByID(ctx context.Context, id int64) (*models.Habit, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Habit, error)
	Update(ctx context.Context, habit *models.Habit) (*models.Habit, error)
	Delete(ctx context.Context, id int64) error
}

// GoalRepository defines the interface for annual goal operations
type GoalRepository interface {
	Create(ctx context.Context, goal *models.AnnualGoal) (*models.AnnualGoal, error)
	GetByID(ctx context.Context, id int64) (*models.AnnualGoal, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.AnnualGoal, error)
	Update(ctx context.Context, goal *models.AnnualGoal) (*models.AnnualGoal, error)
	Delete(ctx context.Context, id int64) error
}

// BrainDumpRepository defines the interface for brain dump items
type BrainDumpRepository interface {
	Create(ctx context.Context, item *models.BrainDumpItem) (*models.BrainDumpItem, error)
	GetByID(ctx context.Context, id int64) (*models.BrainDumpItem, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.BrainDumpItem, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository defines the interface for payment obligations and
// their materialized per-month snapshots
type PaymentRepository interface {
	CreateObligation(ctx context.Context, ob *models.Obligation) (*models.Obligation, error)
	GetObligations(ctx context.Context, userID string) ([]*models.Obligation, error)
	UpdateObligation(ctx context.Context, ob *models.Obligation) (*models.Obligation, error)
	DeleteObligation(ctx context.Context, id int64) error

	GetMonth(ctx context.Context, userID, monthID string) ([]*models.MonthlyPayment, error)
	// CreateMonth inserts the month's snapshot rows in one transaction.
	CreateMonth(ctx context.Context, payments []*models.MonthlyPayment) ([]*models.MonthlyPayment, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.MonthlyPayment, error)
	SetPaid(ctx context.Context, id int64, paid bool) error
}

// MissionRepository defines the interface for home mission checklists
type MissionRepository interface {
	GetDaily(ctx context.Context, userID, dateID string) ([]*models.DailyMission, error)
	SetDaily(ctx context.Context, userID, dateID, missionID string, completed bool) error
	GetWeekly(ctx context.Context, userID, weekID string) ([]*models.WeeklyMission, error)
	SetWeekly(ctx context.Context, userID, weekID, missionID string, completed bool) error
}

// SummaryRepository defines the interface for cached weekly summaries
type SummaryRepository interface {
	Create(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error)
	GetByWeek(ctx context.Context, userID, weekID string) (*models.WeeklySummary, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.WeeklySummary, error)
	// DeleteByMonth drops every cached summary of the month in one
	// statement and reports how many rows were removed.
	DeleteByMonth(ctx context.Context, userID, monthID string) (int64, error)
}

// TaskFilters represents filters for querying tasks
type TaskFilters struct {
	ProjectID *int64
	Priority  *models.TaskPriority
	Completed *bool
	DueOnly   bool
	Limit     int
	Offset    int
}
