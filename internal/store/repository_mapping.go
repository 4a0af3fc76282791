package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/models"
)

// mappingRepository persists forum profile mappings in "forum_profiles".
type mappingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMappingRepository constructs a [MappingRepository] backed by db.
func NewMappingRepository(db *DB, logger *logger.Logger) MappingRepository {
	logger.Debug().Msg("creating forum profile mapping repository")
	return &mappingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *mappingRepository) GetOrCreate(ctx context.Context, localUserID int64) (models.ProfileMapping, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMappingQuery(r.db.builder, localUserID)
	if err != nil {
		return models.ProfileMapping{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*mappingRepository.GetOrCreate").
			Int64("local_user_id", localUserID).
			Str("classification", r.classify(err).String()).
			Msg("failed to insert mapping")
		return models.ProfileMapping{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.Get(ctx, localUserID)
}

func (r *mappingRepository) Get(ctx context.Context, localUserID int64) (models.ProfileMapping, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMappingQuery(r.db.builder, localUserID)
	if err != nil {
		return models.ProfileMapping{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	mapping, err := scanMapping(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ProfileMapping{}, ErrMappingNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*mappingRepository.Get").
			Int64("local_user_id", localUserID).
			Msg("failed to query mapping")
		return models.ProfileMapping{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return mapping, nil
}

func (r *mappingRepository) Save(ctx context.Context, mapping models.ProfileMapping) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMappingQuery(r.db.builder, mapping)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().
				Str("func", "*mappingRepository.Save").
				Int64("local_user_id", mapping.LocalUserID).
				Msg("remote id already claimed by another mapping")
			return ErrRemoteIDAlreadyClaimed
		}
		log.Err(err).
			Str("func", "*mappingRepository.Save").
			Int64("local_user_id", mapping.LocalUserID).
			Str("classification", r.classify(err).String()).
			Msg("failed to update mapping")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMappingNotFound
	}

	return nil
}

func (r *mappingRepository) Delete(ctx context.Context, localUserID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMappingQuery(r.db.builder, localUserID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*mappingRepository.Delete").
			Int64("local_user_id", localUserID).
			Msg("failed to delete mapping")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *mappingRepository) classify(err error) ErrorClassification {
	if r.db.errorClassificator == nil {
		return NonRetryable
	}
	return r.db.errorClassificator.Classify(err)
}
