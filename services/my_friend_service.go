// Package services — MyFriendService: çağıranın bir arkadaşının profili.
//
// Tek bir okuma operasyonu: repository'den birleşik satırı al,
// eksik ortak arkadaş sayısını 0'a çevir, çıktı şeklini doğrula.
// Bu katman log yazmaz ve retry yapmaz; her hata çağırana aynen döner.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/akinalp/friendgraph/models"
	"github.com/akinalp/friendgraph/pkg"
	"github.com/akinalp/friendgraph/repository"
)

// MyFriendService, "my friend" endpoint'inin public interface'i.
type MyFriendService interface {
	// GetByID, callerID'nin kabul edilmiş arkadaşı friendUserID'nin profilini döner.
	// Arkadaş değillerse pkg.ErrNotFound; satır beklenen şekle uymuyorsa pkg.ErrInternal.
	GetByID(ctx context.Context, callerID, friendUserID int64) (*models.FriendProfile, error)
}

type myFriendService struct {
	profileRepo repository.FriendProfileRepository
	validate    *validator.Validate
}

// NewMyFriendService, constructor.
func NewMyFriendService(profileRepo repository.FriendProfileRepository) MyFriendService {
	return &myFriendService{
		profileRepo: profileRepo,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *myFriendService) GetByID(ctx context.Context, callerID, friendUserID int64) (*models.FriendProfile, error) {
	row, err := s.profileRepo.GetByID(ctx, callerID, friendUserID)
	if err != nil {
		return nil, err
	}

	return s.parseProfile(row)
}

// parseProfile, ham satırı FriendProfile'a çevirir ve doğrular.
// NULL mutual_friend_count (LEFT JOIN eşleşmesi yok) 0 demektir.
func (s *myFriendService) parseProfile(row *repository.FriendProfileRow) (*models.FriendProfile, error) {
	profile := &models.FriendProfile{
		ID:               row.ID,
		FullName:         row.FullName,
		PhoneNumber:      row.PhoneNumber,
		TotalFriendCount: row.TotalFriendCount,
	}
	if row.MutualFriendCount.Valid {
		profile.MutualFriendCount = row.MutualFriendCount.Int64
	}

	if err := s.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("%w: friend profile shape violation: %s", pkg.ErrInternal, err.Error())
	}

	return profile, nil
}
