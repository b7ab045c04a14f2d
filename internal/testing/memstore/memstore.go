// Package memstore provides in-memory repositories for tests.
//
// The stores follow the Postgres repositories' contracts, including
// reporting misses as pgx.ErrNoRows, so services and handlers can be
// exercised without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobhub/job-board/internal/domain"
)

// Jobs is an in-memory JobRepository. Set Err to make reads and inserts fail.
type Jobs struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Job
	Err    error
}

// NewJobs returns an empty store whose ids start at 1.
func NewJobs() *Jobs {
	return &Jobs{nextID: 1, rows: map[int64]domain.Job{}}
}

func (m *Jobs) Add(_ context.Context, job *domain.Job) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	stored := *job
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.nextID++
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *Jobs) GetAll(context.Context) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Job, 0, len(m.rows))
	for _, j := range m.rows {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (m *Jobs) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	j, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &j, nil
}

func (m *Jobs) Update(_ context.Context, job *domain.Job) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.rows[job.ID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	j.Title, j.Description = job.Title, job.Description
	j.SalaryFrom, j.SalaryTo, j.IsActive = job.SalaryFrom, job.SalaryTo, job.IsActive
	j.UpdatedAt = time.Now()
	m.rows[job.ID] = j
	return &j, nil
}

func (m *Jobs) DeleteByID(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, pgx.ErrNoRows
	}
	delete(m.rows, id)
	return id, nil
}

// Users is an in-memory UserRepository keyed by email.
type Users struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string]domain.User
}

// NewUsers returns an empty store.
func NewUsers() *Users {
	return &Users{nextID: 1, rows: map[string]domain.User{}}
}

// Create rejects a taken email the way the users.email unique index does.
func (m *Users) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.rows[user.Email]; taken {
		return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
	}
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.rows[user.Email] = *user
	return nil
}

func (m *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

// Revocations is an in-memory auth.RevocationStore.
type Revocations struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

// NewRevocations returns an empty store.
func NewRevocations() *Revocations {
	return &Revocations{ids: map[string]time.Duration{}}
}

func (m *Revocations) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = ttl
	return nil
}

func (m *Revocations) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok, nil
}

// TTL returns the lifetime a token id was revoked for.
func (m *Revocations) TTL(id string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.ids[id]
	return ttl, ok
}

// Len reports the number of stored jobs.
func (m *Jobs) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
