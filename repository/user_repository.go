// Package repository, veritabanı erişim katmanını barındırır.
//
// Her repository bir interface + SQLite implementasyonundan oluşur.
// Service katmanı sadece interface'lere bağımlıdır.
package repository

import (
	"context"

	"github.com/akinalp/friendgraph/models"
)

// UserRepository, kullanıcı kayıtları için interface.
type UserRepository interface {
	// Create, yeni kullanıcı oluşturur; ID ve CreatedAt veritabanından doldurulur.
	Create(ctx context.Context, user *models.User) error

	// GetByID, ID ile kullanıcı döner. Bulunamazsa pkg.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
