// Package repository — FriendshipRepository interface.
//
// Arkadaşlık kenarlarını yazan/okuyan düz SQL katmanı.
// "My friend" okuma sorgusu bu interface'i kullanmaz (bkz. FriendProfileRepository);
// buradaki metodlar kenarları simetri invariant'ına uygun şekilde üretmek içindir.
package repository

import (
	"context"

	"github.com/akinalp/friendgraph/models"
)

// FriendshipRepository, arkadaşlık kenarı işlemleri için interface.
type FriendshipRepository interface {
	// Create, tek bir yönlü kenar yazar (herhangi bir status ile).
	// Aynı (user_id, friend_user_id) zaten varsa pkg.ErrAlreadyExists,
	// kullanıcılardan biri yoksa pkg.ErrNotFound döner.
	Create(ctx context.Context, friendship *models.Friendship) error

	// CreateAccepted, iki kullanıcı arasında kabul edilmiş arkadaşlığı yazar:
	// (userID → friendUserID) ve (friendUserID → userID), tek transaction içinde.
	// Mevcut pending/declined kenarlar accepted'a yükseltilir.
	CreateAccepted(ctx context.Context, userID, friendUserID int64) error

	// GetByPair, yönlü kenarı döner (userID → friendUserID). Bulunamazsa pkg.ErrNotFound.
	GetByPair(ctx context.Context, userID, friendUserID int64) (*models.Friendship, error)
}
