// Package repository — FriendshipRepository SQLite implementasyonu.
//
// Tablo yönlü kenar tutar; kabul edilmiş arkadaşlık iki satırdır.
// CreateAccepted bu iki satırı atomik yazar.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/friendgraph/database"
	"github.com/akinalp/friendgraph/models"
	"github.com/akinalp/friendgraph/pkg"
)

// sqliteFriendshipRepo, FriendshipRepository'nin SQLite implementasyonu.
type sqliteFriendshipRepo struct {
	db *sql.DB
}

// NewSQLiteFriendshipRepo, constructor.
func NewSQLiteFriendshipRepo(db *sql.DB) FriendshipRepository {
	return &sqliteFriendshipRepo{db: db}
}

func (r *sqliteFriendshipRepo) Create(ctx context.Context, f *models.Friendship) error {
	if !f.Status.IsValid() {
		return fmt.Errorf("%w: invalid friendship status %q", pkg.ErrBadRequest, f.Status)
	}
	if f.UserID == f.FriendUserID {
		return fmt.Errorf("%w: user cannot befriend themselves", pkg.ErrBadRequest)
	}

	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	return insertEdge(ctx, r.db, f)
}

func (r *sqliteFriendshipRepo) CreateAccepted(ctx context.Context, userID, friendUserID int64) error {
	if userID == friendUserID {
		return fmt.Errorf("%w: user cannot befriend themselves", pkg.ErrBadRequest)
	}

	now := time.Now().UTC()

	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, pair := range [][2]int64{{userID, friendUserID}, {friendUserID, userID}} {
			if err := upsertAccepted(ctx, tx, pair[0], pair[1], now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteFriendshipRepo) GetByPair(ctx context.Context, userID, friendUserID int64) (*models.Friendship, error) {
	query := `SELECT user_id, friend_user_id, status, created_at, updated_at
	          FROM friendships
	          WHERE user_id = ? AND friend_user_id = ?`

	var f models.Friendship
	err := r.db.QueryRowContext(ctx, query, userID, friendUserID).Scan(
		&f.UserID, &f.FriendUserID, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: friendship %d -> %d", pkg.ErrNotFound, userID, friendUserID)
	}
	if err != nil {
		return nil, fmt.Errorf("friendship get by pair: %w", err)
	}
	return &f, nil
}

// insertEdge, tek bir kenarı yazar ve constraint hatalarını domain error'larına çevirir.
func insertEdge(ctx context.Context, db database.TxQuerier, f *models.Friendship) error {
	query := `INSERT INTO friendships (user_id, friend_user_id, status, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?)`

	_, err := db.ExecContext(ctx, query, f.UserID, f.FriendUserID, string(f.Status), f.CreatedAt, f.UpdatedAt)
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: friendship %d -> %d", pkg.ErrAlreadyExists, f.UserID, f.FriendUserID)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: user %d or %d", pkg.ErrNotFound, f.UserID, f.FriendUserID)
	case err != nil:
		return fmt.Errorf("friendship create: %w", err)
	}
	return nil
}

// upsertAccepted, kenar yoksa accepted olarak ekler, varsa status'unu accepted yapar.
func upsertAccepted(ctx context.Context, db database.TxQuerier, userID, friendUserID int64, now time.Time) error {
	query := `INSERT INTO friendships (user_id, friend_user_id, status, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?)
	          ON CONFLICT (user_id, friend_user_id)
	          DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at`

	accepted := string(models.FriendshipStatusAccepted)
	_, err := db.ExecContext(ctx, query, userID, friendUserID, accepted, now, now)
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: user %d or %d", pkg.ErrNotFound, userID, friendUserID)
	case err != nil:
		return fmt.Errorf("friendship accept %d -> %d: %w", userID, friendUserID, err)
	}
	return nil
}
