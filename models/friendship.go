// Package models — Friendship domain modeli.
//
// Arkadaşlık tablosu yönlü kenarlar (edge) tutar: (user_id → friend_user_id, status).
// Kabul edilmiş bir arkadaşlık iki satırla temsil edilir:
//
//	(A → B, accepted) ve (B → A, accepted)
//
// Okuma tarafı bu simetriye güvenir: toplam ve ortak arkadaş sayıları
// sadece "user_id = X" tarafından hesaplanır.
package models

import "time"

// FriendshipStatus, arkadaşlık kenarının durumunu temsil eden typed constant.
type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusDeclined FriendshipStatus = "declined"
)

// IsValid, status değerinin tanımlı enum değerlerinden biri olup olmadığını döner.
func (s FriendshipStatus) IsValid() bool {
	switch s {
	case FriendshipStatusPending, FriendshipStatusAccepted, FriendshipStatusDeclined:
		return true
	}
	return false
}

// Friendship, "friendships" tablosundaki tek bir yönlü kenardır.
type Friendship struct {
	UserID       int64            `json:"user_id"`
	FriendUserID int64            `json:"friend_user_id"`
	Status       FriendshipStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
