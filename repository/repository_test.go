package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akinalp/friendgraph/database"
	"github.com/akinalp/friendgraph/models"
)

// testStore, gerçek SQLite dosyası üzerinde kurulmuş repository seti.
type testStore struct {
	db          *database.DB
	users       UserRepository
	friendships FriendshipRepository
	profiles    FriendProfileRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	migrations, err := database.Migrations()
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "friendgraph.db"), migrations, zap.NewNop(), database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &testStore{
		db:          db,
		users:       NewSQLiteUserRepo(db.Conn),
		friendships: NewSQLiteFriendshipRepo(db.Conn),
		profiles:    NewBunFriendProfileRepo(db.Bun),
	}
}

// seedUsers, n kullanıcı oluşturur. Boş tabloda ID'ler 1..n olur.
func (s *testStore) seedUsers(t *testing.T, n int) []int64 {
	t.Helper()

	ids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		u := &models.User{
			FullName:    "User " + string(rune('A'+i-1)),
			PhoneNumber: "+1555000000" + string(rune('0'+i%10)),
		}
		require.NoError(t, s.users.Create(context.Background(), u))
		ids = append(ids, u.ID)
	}
	return ids
}

func (s *testStore) befriend(t *testing.T, a, b int64) {
	t.Helper()
	require.NoError(t, s.friendships.CreateAccepted(context.Background(), a, b))
}

func (s *testStore) edge(t *testing.T, from, to int64, status models.FriendshipStatus) {
	t.Helper()
	require.NoError(t, s.friendships.Create(context.Background(), &models.Friendship{
		UserID:       from,
		FriendUserID: to,
		Status:       status,
	}))
}
