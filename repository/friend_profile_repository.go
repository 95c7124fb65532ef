// Package repository — FriendProfileRepository: "my friend" okuma sorgusu.
//
// Sorgu üç parçadan oluşur ve tek bir SELECT olarak çalışır:
//
//	users AS friends
//	  INNER JOIN friendships                          (yetki: caller → target accepted)
//	  INNER JOIN (total sub-query)  AS user_total_friend_count
//	  LEFT  JOIN (mutual sub-query) AS user_mutual_friend_count
//
// Sub-query'ler Bun ile derived table olarak üretilir.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/akinalp/friendgraph/models"
	"github.com/akinalp/friendgraph/pkg"
)

// FriendProfileRow, birleşik sorgunun ham sonucu.
//
// MutualFriendCount nullable'dır: ortak arkadaş yoksa mutual sub-query
// hiç satır üretmez ve LEFT JOIN bu kolonu NULL bırakır.
type FriendProfileRow struct {
	ID                int64         `bun:"id"`
	FullName          string        `bun:"full_name"`
	PhoneNumber       string        `bun:"phone_number"`
	TotalFriendCount  int64         `bun:"total_friend_count"`
	MutualFriendCount sql.NullInt64 `bun:"mutual_friend_count"`
}

// FriendProfileRepository, arkadaş profili + türetilmiş sayılar için interface.
type FriendProfileRepository interface {
	// GetByID, callerID → friendUserID kabul edilmiş kenarı varsa hedefin profilini
	// ve iki sayıyı döner. Kenar yoksa (arkadaş değil, id yok, pending/declined)
	// pkg.ErrNotFound.
	GetByID(ctx context.Context, callerID, friendUserID int64) (*FriendProfileRow, error)

	// TotalFriendCount, kullanıcının kabul edilmiş arkadaş sayısı. Arkadaşı yoksa 0.
	TotalFriendCount(ctx context.Context, userID int64) (int64, error)

	// MutualFriendCount, iki kullanıcının ortak kabul edilmiş arkadaş sayısı. Yoksa 0.
	MutualFriendCount(ctx context.Context, callerID, targetID int64) (int64, error)
}

type bunFriendProfileRepo struct {
	db bun.IDB
}

// NewBunFriendProfileRepo, constructor. *bun.DB veya bun.Tx alabilir.
func NewBunFriendProfileRepo(db bun.IDB) FriendProfileRepository {
	return &bunFriendProfileRepo{db: db}
}

func (r *bunFriendProfileRepo) GetByID(ctx context.Context, callerID, friendUserID int64) (*FriendProfileRow, error) {
	accepted := string(models.FriendshipStatusAccepted)

	var row FriendProfileRow
	err := r.db.NewSelect().
		TableExpr("users AS friends").
		Join("INNER JOIN friendships ON friendships.friend_user_id = friends.id").
		// Inner join güvenli: yetki kenarı hedefin en az bir accepted kenarı olduğunu
		// kanıtlar (simetri), dolayısıyla total satırı her zaman vardır.
		Join("INNER JOIN (?) AS user_total_friend_count ON user_total_friend_count.user_id = friends.id",
			totalFriendCountQuery(r.db)).
		// Ortak arkadaş yoksa sub-query boş döner; INNER JOIN satırı düşürür
		// ve gerçek bir arkadaş NOT_FOUND görünür. LEFT JOIN zorunlu.
		Join("LEFT JOIN (?) AS user_mutual_friend_count ON user_mutual_friend_count.user_id = friends.id",
			mutualFriendCountQuery(r.db, callerID, friendUserID)).
		ColumnExpr("friends.id AS id").
		ColumnExpr("friends.full_name AS full_name").
		ColumnExpr("friends.phone_number AS phone_number").
		ColumnExpr("user_total_friend_count.total_friend_count AS total_friend_count").
		ColumnExpr("user_mutual_friend_count.mutual_friend_count AS mutual_friend_count").
		Where("friendships.user_id = ?", callerID).
		Where("friendships.friend_user_id = ?", friendUserID).
		Where("friendships.status = ?", accepted).
		Limit(1).
		Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: friend %d", pkg.ErrNotFound, friendUserID)
	}
	if err != nil {
		return nil, fmt.Errorf("friend profile get by id: %w", err)
	}

	return &row, nil
}

func (r *bunFriendProfileRepo) TotalFriendCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.NewSelect().
		TableExpr("(?) AS user_total_friend_count", totalFriendCountQuery(r.db)).
		ColumnExpr("user_total_friend_count.total_friend_count").
		Where("user_total_friend_count.user_id = ?", userID).
		Scan(ctx, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("total friend count: %w", err)
	}
	return count, nil
}

func (r *bunFriendProfileRepo) MutualFriendCount(ctx context.Context, callerID, targetID int64) (int64, error) {
	var count int64
	err := r.db.NewSelect().
		TableExpr("(?) AS user_mutual_friend_count", mutualFriendCountQuery(r.db, callerID, targetID)).
		ColumnExpr("user_mutual_friend_count.mutual_friend_count").
		Scan(ctx, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("mutual friend count: %w", err)
	}
	return count, nil
}

// totalFriendCountQuery, user_id → total_friend_count ilişkisini üretir.
//
// Sadece en az bir accepted kenarı olan kullanıcılar görünür; arkadaşı
// olmayan kullanıcı için satır yoktur (0 değil).
func totalFriendCountQuery(db bun.IDB) *bun.SelectQuery {
	return db.NewSelect().
		TableExpr("friendships").
		ColumnExpr("friendships.user_id AS user_id").
		ColumnExpr("COUNT(friendships.friend_user_id) AS total_friend_count").
		Where("friendships.status = ?", string(models.FriendshipStatusAccepted)).
		GroupExpr("friendships.user_id")
}

// mutualFriendCountQuery, (callerID, targetID) için user_id → mutual_friend_count üretir.
//
//	f1: caller'ın accepted friend_user_id'leri
//	f2: target'ın accepted (friend_user_id, user_id) çiftleri
//
// Her iki taraf join'den ÖNCE kendi kullanıcısına filtrelenir; join maliyeti
// tüm graf yerine iki arkadaş listesinin boyutuyla sınırlı kalır.
// Kesişim boşsa sorgu sıfır satır döner.
func mutualFriendCountQuery(db bun.IDB, callerID, targetID int64) *bun.SelectQuery {
	accepted := string(models.FriendshipStatusAccepted)

	f1 := db.NewSelect().
		TableExpr("friendships").
		ColumnExpr("friendships.friend_user_id AS friend_user_id").
		Where("friendships.user_id = ?", callerID).
		Where("friendships.status = ?", accepted)

	f2 := db.NewSelect().
		TableExpr("friendships").
		ColumnExpr("friendships.friend_user_id AS friend_user_id").
		ColumnExpr("friendships.user_id AS user_id").
		Where("friendships.user_id = ?", targetID).
		Where("friendships.status = ?", accepted)

	return db.NewSelect().
		TableExpr("(?) AS f1", f1).
		Join("INNER JOIN (?) AS f2 ON f2.friend_user_id = f1.friend_user_id", f2).
		ColumnExpr("f2.user_id AS user_id").
		ColumnExpr("COUNT(f2.friend_user_id) AS mutual_friend_count").
		GroupExpr("f2.user_id")
}
