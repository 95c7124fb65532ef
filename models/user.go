// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Modeller hem veritabanı satırlarının Go karşılığıdır hem de
// API'den dönen JSON'un şeklini belirler.
package models

import (
	"fmt"
	"strings"
	"time"
)

// User, bir kullanıcıyı temsil eder.
// Arkadaşlık okuma tarafı için sadece id, full_name ve phone_number önemlidir.
type User struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate, kullanıcı kaydı oluşturulmadan önce zorunlu alanları kontrol eder.
func (u *User) Validate() error {
	u.FullName = strings.TrimSpace(u.FullName)
	u.PhoneNumber = strings.TrimSpace(u.PhoneNumber)
	if u.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if u.PhoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	return nil
}
