package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, binary'ye gömülü migration dosyalarını döner
// (migrations/ alt dizini kök olacak şekilde).
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// Sadece embed pattern'ı bozulursa olur, derleme zamanı garantisi.
		panic(err)
	}
	return sub
}
