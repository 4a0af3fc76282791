package store

import "github.com/goldram69/gemdjsso/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	MappingRepository MappingRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		MappingRepository: NewMappingRepository(db, log),
	}
}
