package worker

import (
	"context"
	"errors"
	"time"

	"hireloop/database"
	"hireloop/models"

	"go.mongodb.org/mongo-driver/bson"
)

// overlay applies a $set document to v through a bson round trip, so the
// stubs honour the persisted field names.
func overlay[T any](v *T, set bson.M) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		return err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	for k, val := range set {
		m[k] = val
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

type stubUserRepo struct {
	users     map[string]*models.User
	updateErr error
	updates   []bson.M
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	r := &stubUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	out := map[string]models.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

func (r *stubUserRepo) Upsert(ctx context.Context, user *models.User) (bool, error) {
	_, existed := r.users[user.ID]
	cp := *user
	r.users[user.ID] = &cp
	return !existed, nil
}

func (r *stubUserRepo) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	r.updates = append(r.updates, doc)
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return database.ErrNotFound
	}
	return overlay(u, doc)
}

func (r *stubUserRepo) SearchIDs(ctx context.Context, role, text string) ([]string, error) {
	return nil, nil
}

type stubWorkerRepo struct {
	profiles  map[string]*models.WorkerProfile
	updateErr error
}

func newStubWorkerRepo(profiles ...*models.WorkerProfile) *stubWorkerRepo {
	r := &stubWorkerRepo{profiles: map[string]*models.WorkerProfile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *stubWorkerRepo) EnsureExists(ctx context.Context, p *models.WorkerProfile) (bool, error) {
	if _, ok := r.profiles[p.ID]; ok {
		return false, nil
	}
	r.profiles[p.ID] = p
	return true, nil
}

func (r *stubWorkerRepo) GetByID(ctx context.Context, id string) (*models.WorkerProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubWorkerRepo) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	p, ok := r.profiles[id]
	if !ok {
		return database.ErrNotFound
	}
	return overlay(p, doc)
}

func (r *stubWorkerRepo) UpdateWithDocument(ctx context.Context, id string, update bson.M) error {
	set, _ := update["$set"].(bson.M)
	return r.UpdateSetDocument(ctx, id, set)
}

func (r *stubWorkerRepo) PullFromArray(ctx context.Context, id, field string, value any) error {
	p, ok := r.profiles[id]
	if !ok {
		return database.ErrNotFound
	}
	list := &p.GalleryImages
	if field == "service_images" {
		list = &p.ServiceImages
	}
	out := []string{}
	for _, v := range *list {
		if v != value {
			out = append(out, v)
		}
	}
	*list = out
	return nil
}

func (r *stubWorkerRepo) Search(ctx context.Context, f models.WorkerFilter) ([]models.WorkerProfile, int64, error) {
	var out []models.WorkerProfile
	for _, p := range r.profiles {
		if f.PublicOnly && !p.IsPubliclyVisible() {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubWorkerRepo) CountGrouped(ctx context.Context, field string) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (r *stubWorkerRepo) ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type stubRecords struct {
	reviews  []models.Review
	bookings []models.Booking
}

func (r *stubRecords) ListReviewsByWorker(ctx context.Context, workerID string, page models.Pagination) ([]models.Review, int64, error) {
	return r.reviews, int64(len(r.reviews)), nil
}

func (r *stubRecords) ReviewSummary(ctx context.Context, workerID string) (float64, int64, error) {
	if len(r.reviews) == 0 {
		return 0, 0, nil
	}
	var sum float64
	for _, rv := range r.reviews {
		sum += float64(rv.Rating)
	}
	return sum / float64(len(r.reviews)), int64(len(r.reviews)), nil
}

func (r *stubRecords) ListBookingsInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if !b.StartTime.Before(from) && b.StartTime.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubRecords) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

// atomicTx stands in for a Mongo transaction: it only runs fn.
type atomicTx struct{}

func (atomicTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (atomicTx) Atomic() bool { return true }

var errWriteFailed = errors.New("write failed")

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func gallery(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "https://img.example/" + string(rune('a'+i)) + ".jpg"
	}
	return out
}

// newService wires a worker service around one user and its profile.
func newService(profile *models.WorkerProfile, tx database.Transactor) (*DefaultWorkerService, *stubUserRepo, *stubWorkerRepo) {
	users := newStubUserRepo(&models.User{ID: profile.UserID, Email: profile.UserID + "@example.com", FullName: "Old Name", Role: models.RoleWorker})
	workers := newStubWorkerRepo(profile)
	if tx == nil {
		tx = atomicTx{}
	}
	return &DefaultWorkerService{Users: users, Workers: workers, Records: &stubRecords{}, Tx: tx}, users, workers
}
