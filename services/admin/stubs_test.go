package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	"hireloop/database"
	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
)

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

// applyUpdate runs the $set, $unset and $inc parts of an update document
// against v through a bson round trip.
func applyUpdate[T any](v *T, update bson.M) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		return err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	if set, ok := update["$set"].(bson.M); ok {
		for k, val := range set {
			m[k] = val
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		for k := range unset {
			delete(m, k)
		}
	}
	if inc, ok := update["$inc"].(bson.M); ok {
		for k, val := range inc {
			m[k] = toInt64(m[k]) + toInt64(val)
		}
	}
	raw, err = bson.Marshal(m)
	if err != nil {
		return err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return err
	}
	*v = out
	return nil
}

type stubUsers struct {
	users map[string]models.User
}

func (r *stubUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *stubUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (r *stubUsers) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	out := map[string]models.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *stubUsers) Upsert(ctx context.Context, user *models.User) (bool, error) {
	return false, nil
}

func (r *stubUsers) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	return nil
}

func (r *stubUsers) SearchIDs(ctx context.Context, role, text string) ([]string, error) {
	var ids []string
	for id, u := range r.users {
		if u.Role == role && u.FullName == text {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type stubWorkers struct {
	profiles map[string]*models.WorkerProfile
	counts   map[string]map[string]int64
	updates  []bson.M
}

func (r *stubWorkers) EnsureExists(ctx context.Context, p *models.WorkerProfile) (bool, error) {
	return false, nil
}

func (r *stubWorkers) GetByID(ctx context.Context, id string) (*models.WorkerProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubWorkers) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	return r.UpdateWithDocument(ctx, id, bson.M{"$set": doc})
}

func (r *stubWorkers) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	r.updates = append(r.updates, update)
	p, ok := r.profiles[id]
	if !ok {
		return database.ErrNotFound
	}
	return applyUpdate(p, update)
}

func (r *stubWorkers) PullFromArray(ctx context.Context, id, field string, value any) error {
	return nil
}

func (r *stubWorkers) Search(ctx context.Context, f models.WorkerFilter) ([]models.WorkerProfile, int64, error) {
	var out []models.WorkerProfile
	for _, p := range r.profiles {
		if f.IDs != nil && !contains(f.IDs, p.ID) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubWorkers) CountGrouped(ctx context.Context, field string) (map[string]int64, error) {
	return r.counts[field], nil
}

func (r *stubWorkers) ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubEmployers struct {
	profiles map[string]*models.EmployerProfile
	counts   map[string]int64
}

func (r *stubEmployers) EnsureExists(ctx context.Context, p *models.EmployerProfile) (bool, error) {
	return false, nil
}

func (r *stubEmployers) GetByID(ctx context.Context, id string) (*models.EmployerProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubEmployers) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	return r.UpdateWithDocument(ctx, id, bson.M{"$set": doc})
}

func (r *stubEmployers) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	p, ok := r.profiles[id]
	if !ok {
		return database.ErrNotFound
	}
	return applyUpdate(p, update)
}

func (r *stubEmployers) Search(ctx context.Context, f models.EmployerFilter) ([]models.EmployerProfile, int64, error) {
	var out []models.EmployerProfile
	for _, p := range r.profiles {
		if f.IDs != nil && !contains(f.IDs, p.ID) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubEmployers) CountGrouped(ctx context.Context, field string) (map[string]int64, error) {
	return r.counts, nil
}

func (r *stubEmployers) ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubAudit struct {
	mu      sync.Mutex
	actions []models.AdminAction
	err     error
}

func (r *stubAudit) Insert(ctx context.Context, action *models.AdminAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.actions = append(r.actions, *action)
	return nil
}

func (r *stubAudit) List(ctx context.Context, f models.ActionFilter) ([]models.AdminAction, int64, error) {
	return r.actions, int64(len(r.actions)), nil
}

type stubReports struct {
	reports map[string]*models.Report
	open    int64
}

func (r *stubReports) Create(ctx context.Context, report *models.Report) error {
	if r.reports == nil {
		r.reports = map[string]*models.Report{}
	}
	r.reports[report.ID] = report
	return nil
}

func (r *stubReports) GetByID(ctx context.Context, id string) (*models.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *stubReports) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	rep, ok := r.reports[id]
	if !ok {
		return database.ErrNotFound
	}
	return applyUpdate(rep, bson.M{"$set": doc})
}

func (r *stubReports) List(ctx context.Context, f models.ReportFilter) ([]models.Report, int64, error) {
	var out []models.Report
	for _, rep := range r.reports {
		out = append(out, *rep)
	}
	return out, int64(len(out)), nil
}

func (r *stubReports) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.open, nil
}

type stubRecords struct {
	bookings map[string]int64
	avg      float64
	reviews  int64
	statsErr error
}

func (r *stubRecords) ListReviewsByWorker(ctx context.Context, workerID string, page models.Pagination) ([]models.Review, int64, error) {
	return nil, 0, nil
}

func (r *stubRecords) ReviewSummary(ctx context.Context, workerID string) (float64, int64, error) {
	return r.avg, r.reviews, r.statsErr
}

func (r *stubRecords) ListBookingsInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubRecords) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.bookings, nil
}

type notification struct {
	userID, actionType, reason string
}

type stubNotifier struct {
	sent []notification
}

func (n *stubNotifier) NotifyModeration(ctx context.Context, userID, actionType, reason string) {
	n.sent = append(n.sent, notification{userID, actionType, reason})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

var errAuditDown = errors.New("audit store unavailable")

type fixture struct {
	svc       *DefaultAdminService
	workers   *stubWorkers
	employers *stubEmployers
	audit     *stubAudit
	reports   *stubReports
	notifier  *stubNotifier
}

func newFixture() *fixture {
	worker := models.NewWorkerProfile("w1")
	worker.SetupCompleted = true
	worker.SetupStep = 4
	employer := models.NewEmployerProfile("e1")

	f := &fixture{
		workers:   &stubWorkers{profiles: map[string]*models.WorkerProfile{"w1": worker}},
		employers: &stubEmployers{profiles: map[string]*models.EmployerProfile{"e1": employer}},
		audit:     &stubAudit{},
		reports:   &stubReports{reports: map[string]*models.Report{}},
		notifier:  &stubNotifier{},
	}
	f.svc = &DefaultAdminService{
		Users: &stubUsers{users: map[string]models.User{
			"w1": {ID: "w1", Email: "w1@example.com", FullName: "Worker One", Role: models.RoleWorker},
			"e1": {ID: "e1", Email: "e1@example.com", FullName: "Employer One", Role: models.RoleEmployer},
		}},
		Workers:   f.workers,
		Employers: f.employers,
		Audit:     f.audit,
		Reports:   f.reports,
		Records:   &stubRecords{},
		Notifier:  f.notifier,
	}
	return f
}
