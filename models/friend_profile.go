package models

// FriendProfile, "my friend" endpoint'inin döndüğü kayıt.
//
// Hedef kullanıcının profili + iki türetilmiş sayı:
//   - TotalFriendCount: hedefin kabul edilmiş arkadaş sayısı
//   - MutualFriendCount: çağıran ile hedef arasındaki ortak arkadaş sayısı
//
// validate tag'leri sorgudan dönen satırın şeklini garanti eder.
// Ortak arkadaşlar hedefin arkadaşlarının alt kümesidir, bu yüzden
// MutualFriendCount hiçbir zaman TotalFriendCount'u geçemez.
type FriendProfile struct {
	ID                int64  `json:"id" validate:"gt=0"`
	FullName          string `json:"full_name" validate:"required"`
	PhoneNumber       string `json:"phone_number" validate:"required"`
	TotalFriendCount  int64  `json:"total_friend_count" validate:"gte=0"`
	MutualFriendCount int64  `json:"mutual_friend_count" validate:"gte=0,ltefield=TotalFriendCount"`
}
