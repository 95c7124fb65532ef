package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/friendgraph/pkg"
	"github.com/akinalp/friendgraph/repository"
)

// fakeProfileRepo, FriendProfileRepository'nin test implementasyonu.
type fakeProfileRepo struct {
	row   *repository.FriendProfileRow
	err   error
	calls int
}

func (f *fakeProfileRepo) GetByID(_ context.Context, _, _ int64) (*repository.FriendProfileRow, error) {
	f.calls++
	return f.row, f.err
}

func (f *fakeProfileRepo) TotalFriendCount(context.Context, int64) (int64, error) {
	return 0, errors.New("not used")
}

func (f *fakeProfileRepo) MutualFriendCount(context.Context, int64, int64) (int64, error) {
	return 0, errors.New("not used")
}

func validRow() *repository.FriendProfileRow {
	return &repository.FriendProfileRow{
		ID:                2,
		FullName:          "Ada Lovelace",
		PhoneNumber:       "+15550002",
		TotalFriendCount:  2,
		MutualFriendCount: sql.NullInt64{Int64: 1, Valid: true},
	}
}

func TestMyFriendService_GetByID(t *testing.T) {
	repo := &fakeProfileRepo{row: validRow()}
	svc := NewMyFriendService(repo)

	profile, err := svc.GetByID(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), profile.ID)
	assert.Equal(t, "Ada Lovelace", profile.FullName)
	assert.Equal(t, int64(2), profile.TotalFriendCount)
	assert.Equal(t, int64(1), profile.MutualFriendCount)
}

func TestMyFriendService_GetByID_NullMutualBecomesZero(t *testing.T) {
	row := validRow()
	row.TotalFriendCount = 1
	row.MutualFriendCount = sql.NullInt64{}

	svc := NewMyFriendService(&fakeProfileRepo{row: row})

	profile, err := svc.GetByID(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.MutualFriendCount)
	assert.Equal(t, int64(1), profile.TotalFriendCount)
}

func TestMyFriendService_GetByID_PropagatesRepositoryErrors(t *testing.T) {
	storeErr := errors.New("database is locked")

	tests := []struct {
		name string
		err  error
	}{
		{"not found", fmt.Errorf("%w: friend 4", pkg.ErrNotFound)},
		{"store failure", storeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProfileRepo{err: tt.err}
			svc := NewMyFriendService(repo)

			profile, err := svc.GetByID(context.Background(), 1, 4)
			assert.Nil(t, profile)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, repo.calls, "no retries")
		})
	}
}

func TestMyFriendService_GetByID_ShapeViolation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *repository.FriendProfileRow)
	}{
		{"empty full name", func(r *repository.FriendProfileRow) { r.FullName = "" }},
		{"empty phone number", func(r *repository.FriendProfileRow) { r.PhoneNumber = "" }},
		{"non-positive id", func(r *repository.FriendProfileRow) { r.ID = 0 }},
		{"negative total", func(r *repository.FriendProfileRow) { r.TotalFriendCount = -1 }},
		{"negative mutual", func(r *repository.FriendProfileRow) { r.MutualFriendCount = sql.NullInt64{Int64: -1, Valid: true} }},
		{"mutual above total", func(r *repository.FriendProfileRow) { r.MutualFriendCount = sql.NullInt64{Int64: 3, Valid: true} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(row)

			svc := NewMyFriendService(&fakeProfileRepo{row: row})
			profile, err := svc.GetByID(context.Background(), 1, 2)

			assert.Nil(t, profile)
			require.ErrorIs(t, err, pkg.ErrInternal)
			assert.NotErrorIs(t, err, pkg.ErrNotFound)
		})
	}
}
