package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

// newTestService wires a Service onto in-memory fakes with a fixed clock.
func newTestService(now time.Time) (*Service, *fakes) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &fakes{
		projects:  &fakeProjectRepo{},
		templates: &fakeTemplateRepo{},
		tasks:     &fakeTaskRepo{},
		planner:   &fakePlannerRepo{},
		habits:    &fakeHabitRepo{},
		brainDump: &fakeBrainDumpRepo{},
		payments:  &fakePaymentRepo{},
		missions:  &fakeMissionRepo{},
		summaries: &fakeSummaryRepo{},
		ai:        &fakeGenerator{reply: "generated text"},
	}
	svc := &Service{
		logger:    logger,
		ai:        f.ai,
		Projects:  f.projects,
		Templates: f.templates,
		Tasks:     f.tasks,
		Planner:   f.planner,
		Habits:    f.habits,
		BrainDump: f.brainDump,
		Payments:  f.payments,
		Missions:  f.missions,
		Summaries: f.summaries,
		now:       func() time.Time { return now },
	}
	return svc, f
}

func newProject(userID, name string) *models.Project {
	return &models.Project{UserID: userID, Name: name, Category: "art"}
}

func newTask(userID string, projectID int64, name string) *models.Task {
	return &models.Task{UserID: userID, ProjectID: projectID, Name: name}
}

type fakes struct {
	projects  *fakeProjectRepo
	templates *fakeTemplateRepo
	tasks     *fakeTaskRepo
	planner   *fakePlannerRepo
	habits    *fakeHabitRepo
	brainDump *fakeBrainDumpRepo
	payments  *fakePaymentRepo
	missions  *fakeMissionRepo
	summaries *fakeSummaryRepo
	ai        *fakeGenerator
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (g *fakeGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type fakeProjectRepo struct {
	items  []*models.Project
	nextID int64
}

func (r *fakeProjectRepo) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.items = append(r.items, &cp)
	return p, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) GetByUserID(_ context.Context, userID string) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range r.items {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *models.Project) (*models.Project, error) {
	for i, cur := range r.items {
		if cur.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return p, nil
		}
	}
	return nil, fmt.Errorf("project %d not found", p.ID)
}

func (r *fakeProjectRepo) UpdateOrders(_ context.Context, userID string, orders map[int64]int) error {
	for _, p := range r.items {
		if p.UserID != userID {
			continue
		}
		if order, ok := orders[p.ID]; ok {
			p.SortOrder = order
		}
	}
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("project %d not found", id)
}

type fakeTemplateRepo struct {
	items  []*models.ProjectTemplate
	nextID int64
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *models.ProjectTemplate) (*models.ProjectTemplate, error) {
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.items = append(r.items, &cp)
	return t, nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id int64) (*models.ProjectTemplate, error) {
	for _, t := range r.items {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTemplateRepo) GetByUserID(_ context.Context, userID string) ([]*models.ProjectTemplate, error) {
	var out []*models.ProjectTemplate
	for _, t := range r.items {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id int64) error {
	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("template %d not found", id)
}

type fakeTaskRepo struct {
	items  []*models.Task
	nextID int64
}

func (r *fakeTaskRepo) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.items = append(r.items, &cp)
	return t, nil
}

func (r *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*models.Task) ([]*models.Task, error) {
	for _, t := range tasks {
		if _, err := r.Create(ctx, t); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*models.Task, error) {
	for _, t := range r.items {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) GetByProjectID(_ context.Context, projectID int64) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.items {
		if t.ProjectID == projectID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByUserID(_ context.Context, userID string, filters repository.TaskFilters) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.items {
		if t.UserID != userID {
			continue
		}
		if filters.DueOnly && t.DueDate == nil {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *models.Task) (*models.Task, error) {
	for i, cur := range r.items {
		if cur.ID == t.ID {
			cp := *t
			r.items[i] = &cp
			return t, nil
		}
	}
	return nil, fmt.Errorf("task %d not found", t.ID)
}

func (r *fakeTaskRepo) UpdateOrders(_ context.Context, projectID int64, orders map[int64]int) error {
	for _, t := range r.items {
		if t.ProjectID != projectID {
			continue
		}
		if order, ok := orders[t.ID]; ok {
			t.SortOrder = order
		}
	}
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %d not found", id)
}

type fakePlannerRepo struct {
	items  []*models.DailyTask
	nextID int64
}

func (r *fakePlannerRepo) Create(_ context.Context, t *models.DailyTask) (*models.DailyTask, error) {
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.items = append(r.items, &cp)
	return t, nil
}

func (r *fakePlannerRepo) GetByID(_ context.Context, id int64) (*models.DailyTask, error) {
	for _, t := range r.items {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePlannerRepo) GetByPlanDate(_ context.Context, userID, planDate string) ([]*models.DailyTask, error) {
	var out []*models.DailyTask
	for _, t := range r.items {
		if t.UserID == userID && t.PlanDate == planDate {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlannerRepo) GetByOriginalTask(_ context.Context, userID string, originalTaskID int64, planDate string) (*models.DailyTask, error) {
	for _, t := range r.items {
		if t.UserID == userID && t.PlanDate == planDate &&
			t.OriginalTaskID != nil && *t.OriginalTaskID == originalTaskID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePlannerRepo) Update(_ context.Context, t *models.DailyTask) (*models.DailyTask, error) {
	for i, cur := range r.items {
		if cur.ID == t.ID {
			cp := *t
			r.items[i] = &cp
			return t, nil
		}
	}
	return nil, fmt.Errorf("daily task %d not found", t.ID)
}

func (r *fakePlannerRepo) Delete(_ context.Context, id int64) error {
	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("daily task %d not found", id)
}

func (r *fakePlannerRepo) Rollover(_ context.Context, userID, today string) (int64, error) {
	var n int64
	for _, t := range r.items {
		if t.UserID == userID && !t.Completed && t.PlanDate < today {
			t.PlanDate = today
			n++
		}
	}
	return n, nil
}

func (r *fakePlannerRepo) RolloverAll(_ context.Context, today string) (int64, error) {
	var n int64
	for _, t := range r.items {
		if !t.Completed && t.PlanDate < today {
			t.PlanDate = today
			n++
		}
	}
	return n, nil
}

type fakeHabitRepo struct {
	items  []*models.Habit
	nextID int64
}

func (r *fakeHabitRepo) Create(_ context.Context, h *models.Habit) (*models.Habit, error) {
	r.nextID++
	h.ID = r.nextID
	cp := *h
	r.items = append(r.items, &cp)
	return h, nil
}

func (r *fakeHabitRepo) GetByID(_ context.Context, id int64) (*models.Habit, error) {
	for _, h := range r.items {
		if h.ID == id {
			cp := *h
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeHabitRepo) GetByUserID(_ context.Context, userID string) ([]*models.Habit, error) {
	var out []*models.Habit
	for _, h := range r.items {
		if h.UserID == userID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, h *models.Habit) (*models.Habit, error) {
	for i, cur := range r.items {
		if cur.ID == h.ID {
			cp := *h
			r.items[i] = &cp
			return h, nil
		}
	}
	return nil, fmt.Errorf("habit %d not found", h.ID)
}

func (r *fakeHabitRepo) Delete(_ context.Context, id int64) error {
	for i, h := range r.items {
		if h.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("habit %d not found", id)
}

type fakePaymentRepo struct {
	obligations []*models.Obligation
	payments    []*models.MonthlyPayment
	nextID      int64
}

func (r *fakePaymentRepo) CreateObligation(_ context.Context, ob *models.Obligation) (*models.Obligation, error) {
	r.nextID++
	ob.ID = r.nextID
	cp := *ob
	r.obligations = append(r.obligations, &cp)
	return ob, nil
}

func (r *fakePaymentRepo) GetObligations(_ context.Context, userID string) ([]*models.Obligation, error) {
	var out []*models.Obligation
	for _, ob := range r.obligations {
		if ob.UserID == userID {
			cp := *ob
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) UpdateObligation(_ context.Context, ob *models.Obligation) (*models.Obligation, error) {
	for i, cur := range r.obligations {
		if cur.ID == ob.ID {
			cp := *ob
			r.obligations[i] = &cp
			return ob, nil
		}
	}
	return nil, fmt.Errorf("obligation %d not found", ob.ID)
}

func (r *fakePaymentRepo) DeleteObligation(_ context.Context, id int64) error {
	for i, ob := range r.obligations {
		if ob.ID == id {
			r.obligations = append(r.obligations[:i], r.obligations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("obligation %d not found", id)
}

func (r *fakePaymentRepo) GetMonth(_ context.Context, userID, monthID string) ([]*models.MonthlyPayment, error) {
	var out []*models.MonthlyPayment
	for _, p := range r.payments {
		if p.UserID == userID && p.MonthID == monthID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) CreateMonth(_ context.Context, payments []*models.MonthlyPayment) ([]*models.MonthlyPayment, error) {
	for _, p := range payments {
		r.nextID++
		p.ID = r.nextID
		cp := *p
		r.payments = append(r.payments, &cp)
	}
	return payments, nil
}

func (r *fakePaymentRepo) GetPaymentByID(_ context.Context, id int64) (*models.MonthlyPayment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) SetPaid(_ context.Context, id int64, paid bool) error {
	for _, p := range r.payments {
		if p.ID == id {
			p.Paid = paid
			return nil
		}
	}
	return fmt.Errorf("monthly payment %d not found", id)
}

type fakeSummaryRepo struct {
	items  []*models.WeeklySummary
	nextID int64
}

func (r *fakeSummaryRepo) Create(_ context.Context, s *models.WeeklySummary) (*models.WeeklySummary, error) {
	for _, cur := range r.items {
		if cur.UserID == s.UserID && cur.WeekID == s.WeekID {
			cur.SummaryText = s.SummaryText
			return s, nil
		}
	}
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.items = append(r.items, &cp)
	return s, nil
}

func (r *fakeSummaryRepo) GetByWeek(_ context.Context, userID, weekID string) (*models.WeeklySummary, error) {
	for _, s := range r.items {
		if s.UserID == userID && s.WeekID == weekID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSummaryRepo) GetByUserID(_ context.Context, userID string) ([]*models.WeeklySummary, error) {
	var out []*models.WeeklySummary
	for _, s := range r.items {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSummaryRepo) DeleteByMonth(_ context.Context, userID, monthID string) (int64, error) {
	var kept []*models.WeeklySummary
	var n int64
	for _, s := range r.items {
		if s.UserID == userID && s.MonthID == monthID {
			n++
			continue
		}
		kept = append(kept, s)
	}
	r.items = kept
	return n, nil
}

type fakeBrainDumpRepo struct {
	items  []*models.BrainDumpItem
	nextID int64
}

func (r *fakeBrainDumpRepo) Create(_ context.Context, item *models.BrainDumpItem) (*models.BrainDumpItem, error) {
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items = append(r.items, &cp)
	return item, nil
}

func (r *fakeBrainDumpRepo) GetByID(_ context.Context, id int64) (*models.BrainDumpItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBrainDumpRepo) GetByUserID(_ context.Context, userID string) ([]*models.BrainDumpItem, error) {
	var out []*models.BrainDumpItem
	for _, item := range r.items {
		if item.UserID == userID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBrainDumpRepo) Delete(_ context.Context, id int64) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("brain dump item %d not found", id)
}

// fakeMissionRepo tracks completion keyed by user+period+mission, mirroring
// the state tables.
type fakeMissionRepo struct {
	daily  map[string]bool
	weekly map[string]bool
}

func (r *fakeMissionRepo) GetDaily(_ context.Context, userID, dateID string) ([]*models.DailyMission, error) {
	missions := models.DefaultDailyMissions()
	for _, m := range missions {
		m.Completed = r.daily[userID+"|"+dateID+"|"+m.ID]
	}
	return missions, nil
}

func (r *fakeMissionRepo) SetDaily(_ context.Context, userID, dateID, missionID string, completed bool) error {
	if r.daily == nil {
		r.daily = make(map[string]bool)
	}
	r.daily[userID+"|"+dateID+"|"+missionID] = completed
	return nil
}

func (r *fakeMissionRepo) GetWeekly(_ context.Context, userID, weekID string) ([]*models.WeeklyMission, error) {
	missions := models.DefaultWeeklyMissions()
	for _, m := range missions {
		m.Completed = r.weekly[userID+"|"+weekID+"|"+m.ID]
	}
	return missions, nil
}

func (r *fakeMissionRepo) SetWeekly(_ context.Context, userID, weekID, missionID string, completed bool) error {
	if r.weekly == nil {
		r.weekly = make(map[string]bool)
	}
	r.weekly[userID+"|"+weekID+"|"+missionID] = completed
	return nil
}
