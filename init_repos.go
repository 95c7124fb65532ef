// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Yazma tarafı düz SQL (*sql.DB), okuma sorgusu Bun üzerinden çalışır;
// ikisi de aynı connection pool'u paylaşır.
package main

import (
	"github.com/akinalp/friendgraph/database"
	"github.com/akinalp/friendgraph/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	User          repository.UserRepository
	Friendship    repository.FriendshipRepository
	FriendProfile repository.FriendProfileRepository
}

func initRepositories(db *database.DB) *Repositories {
	return &Repositories{
		User:          repository.NewSQLiteUserRepo(db.Conn),
		Friendship:    repository.NewSQLiteFriendshipRepo(db.Conn),
		FriendProfile: repository.NewBunFriendProfileRepo(db.Bun),
	}
}
