// Package database embed dosyası: migration SQL dosyalarını binary'ye gömer.
//
// Deploy edilen binary yanında migration dosyalarına ihtiyaç duymaz.
package database

import (
	"embed"
	"io/fs"
)

// EmbeddedMigrations, migrations/ dizinindeki SQL dosyalarını içerir.
// Kullanım: fs.Sub(EmbeddedMigrations, "migrations") ile alt dizine eriş.
//
//go:embed migrations/*.sql
var EmbeddedMigrations embed.FS

// Migrations, EmbeddedMigrations'ın "migrations" alt dizinini döner.
func Migrations() (fs.FS, error) {
	return fs.Sub(EmbeddedMigrations, "migrations")
}
