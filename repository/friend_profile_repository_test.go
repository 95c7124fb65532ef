package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/friendgraph/models"
	"github.com/akinalp/friendgraph/pkg"
)

func TestFriendProfile_GetByID_NoMutualFriends(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 3)
	ctx := context.Background()

	s.befriend(t, ids[0], ids[1])
	s.befriend(t, ids[0], ids[2])

	row, err := s.profiles.GetByID(ctx, ids[0], ids[1])
	require.NoError(t, err)

	assert.Equal(t, ids[1], row.ID)
	assert.Equal(t, "User B", row.FullName)
	assert.NotEmpty(t, row.PhoneNumber)
	assert.Equal(t, int64(1), row.TotalFriendCount)
	assert.False(t, row.MutualFriendCount.Valid, "mutual count should be NULL when nothing is shared")
}

func TestFriendProfile_GetByID_WithMutualFriend(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 3)
	ctx := context.Background()

	s.befriend(t, ids[0], ids[1])
	s.befriend(t, ids[0], ids[2])
	s.befriend(t, ids[1], ids[2])

	row, err := s.profiles.GetByID(ctx, ids[0], ids[1])
	require.NoError(t, err)

	assert.Equal(t, int64(2), row.TotalFriendCount)
	require.True(t, row.MutualFriendCount.Valid)
	assert.Equal(t, int64(1), row.MutualFriendCount.Int64)
}

func TestFriendProfile_GetByID_NotFound(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 6)
	ctx := context.Background()

	s.befriend(t, ids[0], ids[1])
	s.edge(t, ids[0], ids[4], models.FriendshipStatusPending)
	s.edge(t, ids[0], ids[5], models.FriendshipStatusDeclined)
	// Sadece ters yönde kenar: 4 → 1 accepted, 1 → 4 yok.
	s.edge(t, ids[3], ids[0], models.FriendshipStatusAccepted)

	tests := []struct {
		name   string
		caller int64
		target int64
	}{
		{"no edge", ids[0], ids[2]},
		{"reverse edge only", ids[0], ids[3]},
		{"pending edge", ids[0], ids[4]},
		{"declined edge", ids[0], ids[5]},
		{"unknown target", ids[0], 9999},
		{"unknown caller", 9999, ids[1]},
		{"self", ids[0], ids[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.profiles.GetByID(ctx, tt.caller, tt.target)
			require.ErrorIs(t, err, pkg.ErrNotFound)
		})
	}
}

func TestFriendProfile_PendingEdgesDoNotCount(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 4)
	ctx := context.Background()

	s.befriend(t, ids[0], ids[1])
	s.befriend(t, ids[0], ids[2])
	// 2 ve 3 arasında pending istek: ne toplamda ne ortakta sayılmalı.
	s.edge(t, ids[1], ids[2], models.FriendshipStatusPending)
	s.edge(t, ids[1], ids[3], models.FriendshipStatusDeclined)

	row, err := s.profiles.GetByID(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.TotalFriendCount)
	assert.False(t, row.MutualFriendCount.Valid)
}

func TestFriendProfile_TotalFriendCount(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 4)
	ctx := context.Background()

	s.befriend(t, ids[0], ids[1])
	s.befriend(t, ids[0], ids[2])
	s.edge(t, ids[0], ids[3], models.FriendshipStatusPending)

	total, err := s.profiles.TotalFriendCount(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Accepted kenarı olmayan kullanıcı sub-query'de yok → 0.
	total, err = s.profiles.TotalFriendCount(ctx, ids[3])
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestFriendProfile_MutualFriendCount(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 6)
	ctx := context.Background()

	// 1 ve 2'nin ortak arkadaşları: 3, 4. 5 sadece 1'in, 6 sadece 2'nin arkadaşı.
	s.befriend(t, ids[0], ids[1])
	for _, shared := range []int64{ids[2], ids[3]} {
		s.befriend(t, ids[0], shared)
		s.befriend(t, ids[1], shared)
	}
	s.befriend(t, ids[0], ids[4])
	s.befriend(t, ids[1], ids[5])

	pairs := [][2]int64{
		{ids[0], ids[1]},
		{ids[0], ids[2]},
		{ids[2], ids[3]},
		{ids[4], ids[5]},
		{ids[0], ids[5]},
	}

	for _, p := range pairs {
		ab, err := s.profiles.MutualFriendCount(ctx, p[0], p[1])
		require.NoError(t, err)
		ba, err := s.profiles.MutualFriendCount(ctx, p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "mutual count must be symmetric for %v", p)

		total, err := s.profiles.TotalFriendCount(ctx, p[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, ab, "mutual friends are a subset of the target's friends")
	}

	mutual, err := s.profiles.MutualFriendCount(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.Equal(t, int64(2), mutual)

	mutual, err = s.profiles.MutualFriendCount(ctx, ids[4], ids[5])
	require.NoError(t, err)
	assert.Equal(t, int64(0), mutual)
}

func TestFriendProfile_GetByID_MatchesStandaloneCounts(t *testing.T) {
	s := newTestStore(t)
	ids := s.seedUsers(t, 5)
	ctx := context.Background()

	s.befriend(t, ids[0], ids[1])
	s.befriend(t, ids[0], ids[2])
	s.befriend(t, ids[0], ids[3])
	s.befriend(t, ids[1], ids[2])
	s.befriend(t, ids[1], ids[3])
	s.befriend(t, ids[1], ids[4])

	row, err := s.profiles.GetByID(ctx, ids[0], ids[1])
	require.NoError(t, err)

	total, err := s.profiles.TotalFriendCount(ctx, ids[1])
	require.NoError(t, err)
	mutual, err := s.profiles.MutualFriendCount(ctx, ids[0], ids[1])
	require.NoError(t, err)

	assert.Equal(t, total, row.TotalFriendCount)
	assert.Equal(t, int64(4), row.TotalFriendCount)
	require.True(t, row.MutualFriendCount.Valid)
	assert.Equal(t, mutual, row.MutualFriendCount.Int64)
	assert.Equal(t, int64(2), mutual)
}
