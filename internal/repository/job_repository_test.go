package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jobhub/job-board/internal/domain"
)

var jobColumnNames = []string{"id", "user_id", "title", "description", "salary_from", "salary_to", "is_active", "created_at", "updated_at"}

type JobRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo JobRepository
	ctx  context.Context
	now  time.Time
}

func (s *JobRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock
	s.repo = NewJobRepository(mock)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *JobRepoTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestJobRepoTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepoTestSuite))
}

func (s *JobRepoTestSuite) jobRow(id, userID int64, title string, active bool) *pgxmock.Rows {
	return pgxmock.NewRows(jobColumnNames).
		AddRow(id, userID, title, "Go services", int64(100000), int64(150000), active, s.now, s.now)
}

func (s *JobRepoTestSuite) TestAdd_ReturnsStoredJob() {
	input := &domain.Job{
		UserID:      1,
		Title:       "Backend Engineer",
		Description: "Go services",
		SalaryFrom:  100000,
		SalaryTo:    150000,
		IsActive:    true,
	}

	s.mock.ExpectQuery(`INSERT INTO jobs \(user_id, title, description, salary_from, salary_to, is_active\)`).
		WithArgs(int64(1), "Backend Engineer", "Go services", int64(100000), int64(150000), true).
		WillReturnRows(s.jobRow(7, 1, "Backend Engineer", true))

	stored, err := s.repo.Add(s.ctx, input)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(7), stored.ID)
	assert.Equal(s.T(), input.UserID, stored.UserID)
	assert.Equal(s.T(), input.Title, stored.Title)
	assert.Equal(s.T(), input.Description, stored.Description)
	assert.Equal(s.T(), input.SalaryFrom, stored.SalaryFrom)
	assert.Equal(s.T(), input.SalaryTo, stored.SalaryTo)
	assert.True(s.T(), stored.IsActive)
}

func (s *JobRepoTestSuite) TestGetAll_ReturnsEveryRow() {
	rows := pgxmock.NewRows(jobColumnNames).
		AddRow(int64(1), int64(1), "A", "", int64(0), int64(0), true, s.now, s.now).
		AddRow(int64(2), int64(3), "B", "", int64(0), int64(0), false, s.now, s.now)
	s.mock.ExpectQuery(`SELECT (.+) FROM jobs ORDER BY id`).WillReturnRows(rows)

	jobs, err := s.repo.GetAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), jobs, 2)
	assert.ElementsMatch(s.T(), []int64{1, 2}, []int64{jobs[0].ID, jobs[1].ID})
}

func (s *JobRepoTestSuite) TestGetAll_EmptyTableIsEmptySlice() {
	s.mock.ExpectQuery(`SELECT (.+) FROM jobs ORDER BY id`).WillReturnRows(pgxmock.NewRows(jobColumnNames))

	jobs, err := s.repo.GetAll(s.ctx)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), jobs)
	assert.Empty(s.T(), jobs)
}

func (s *JobRepoTestSuite) TestGetAll_QueryError() {
	s.mock.ExpectQuery(`SELECT (.+) FROM jobs`).WillReturnError(errors.New("connection reset"))

	_, err := s.repo.GetAll(s.ctx)
	assert.EqualError(s.T(), err, "connection reset")
}

func (s *JobRepoTestSuite) TestGetByID_Found() {
	s.mock.ExpectQuery(`SELECT (.+) FROM jobs WHERE id=\$1`).
		WithArgs(int64(7)).
		WillReturnRows(s.jobRow(7, 1, "Backend Engineer", true))

	job, err := s.repo.GetByID(s.ctx, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(7), job.ID)
	assert.True(s.T(), job.OwnedBy(1))
}

func (s *JobRepoTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery(`SELECT (.+) FROM jobs WHERE id=\$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	job, err := s.repo.GetByID(s.ctx, 404)
	assert.Nil(s.T(), job)
	assert.ErrorIs(s.T(), err, pgx.ErrNoRows)
}

func (s *JobRepoTestSuite) TestUpdate_OverwritesMutableFields() {
	s.mock.ExpectQuery(`UPDATE jobs SET title=\$1, description=\$2, salary_from=\$3, salary_to=\$4, is_active=\$5, updated_at=NOW\(\)`).
		WithArgs("Backend Engineer", "Go services", int64(100000), int64(150000), false, int64(7)).
		WillReturnRows(s.jobRow(7, 1, "Backend Engineer", false))

	updated, err := s.repo.Update(s.ctx, &domain.Job{
		ID:          7,
		Title:       "Backend Engineer",
		Description: "Go services",
		SalaryFrom:  100000,
		SalaryTo:    150000,
		IsActive:    false,
	})
	require.NoError(s.T(), err)
	assert.False(s.T(), updated.IsActive)
	assert.Equal(s.T(), int64(1), updated.UserID)
}

func (s *JobRepoTestSuite) TestDeleteByID_ReturnsID() {
	s.mock.ExpectExec(`DELETE FROM jobs WHERE id=\$1`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	id, err := s.repo.DeleteByID(s.ctx, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(7), id)
}

func (s *JobRepoTestSuite) TestDeleteByID_Missing() {
	s.mock.ExpectExec(`DELETE FROM jobs WHERE id=\$1`).
		WithArgs(int64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err := s.repo.DeleteByID(s.ctx, 8)
	assert.ErrorIs(s.T(), err, pgx.ErrNoRows)
}
