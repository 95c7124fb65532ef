// Package main — Service katmanı başlatma.
package main

import (
	"github.com/akinalp/friendgraph/config"
	"github.com/akinalp/friendgraph/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth     services.AuthService
	MyFriend services.MyFriendService
}

// initServices, service'leri repository'ler ve config ile oluşturur.
func initServices(repos *Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     services.NewAuthService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		MyFriend: services.NewMyFriendService(repos.FriendProfile),
	}
}
