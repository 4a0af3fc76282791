package store

import (
	"context"

	"github.com/goldram69/gemdjsso/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads the host application's users. This service never
// writes them.
type UserRepository interface {
	// GetUserByID returns [ErrUserNotFound] when id is unknown.
	GetUserByID(ctx context.Context, id int64) (models.LocalUser, error)
	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.LocalUser, error)
}

// MappingRepository persists [models.ProfileMapping] rows.
type MappingRepository interface {
	// GetOrCreate returns the mapping of localUserID, inserting an empty one
	// first when none exists.
	GetOrCreate(ctx context.Context, localUserID int64) (models.ProfileMapping, error)
	// Get returns [ErrMappingNotFound] when localUserID has no mapping.
	Get(ctx context.Context, localUserID int64) (models.ProfileMapping, error)
	// Save writes RemoteID and LastSyncedAt of an existing mapping. A remote
	// id held by another mapping yields [ErrRemoteIDAlreadyClaimed].
	Save(ctx context.Context, mapping models.ProfileMapping) error
	// Delete removes the mapping; deleting a missing one is not an error.
	Delete(ctx context.Context, localUserID int64) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
