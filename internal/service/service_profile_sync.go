package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goldram69/gemdjsso/internal/adapter"
	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/store"
	"github.com/goldram69/gemdjsso/internal/utils"
	"github.com/goldram69/gemdjsso/models"
)

const (
	placeholderEmailDomain = "example.com"
	generatedPasswordBytes = 32
)

// profileSyncService is the concrete implementation of ProfileSyncService.
//
// The local user is always authoritative: data flows to the forum only.
// Concurrent reconciles of one user are not serialised here; the
// UNIQUE(remote_id) constraint and the forum's own external id uniqueness
// catch the races, and a "taken" create answer is turned into a link.
type profileSyncService struct {
	forum    adapter.ForumAdapter
	users    store.UserRepository
	mappings store.MappingRepository

	inactivePolicy string
	deletePolicy   string

	metrics *metrics.Metrics
	logger  *logger.Logger

	now         func() time.Time
	newPassword func() (string, error)
}

// NewProfileSyncService wires the sync engine. Empty policies fall back to
// the defaults; unknown ones are rejected.
func NewProfileSyncService(
	forum adapter.ForumAdapter,
	storages *store.Storages,
	cfg config.App,
	m *metrics.Metrics,
	log *logger.Logger,
) (ProfileSyncService, error) {
	inactive := cfg.InactiveUserPolicy
	if inactive == "" {
		inactive = config.InactivePolicyDeactivate
	}
	if inactive != config.InactivePolicyDeactivate && inactive != config.InactivePolicySkip {
		return nil, fmt.Errorf("%w: inactive user policy %q", ErrInvalidPolicy, inactive)
	}

	deletePolicy := cfg.DeletePolicy
	if deletePolicy == "" {
		deletePolicy = config.DeletePolicyLog
	}
	if deletePolicy != config.DeletePolicyLog && deletePolicy != config.DeletePolicyDelete {
		return nil, fmt.Errorf("%w: delete policy %q", ErrInvalidPolicy, deletePolicy)
	}

	return &profileSyncService{
		forum:          forum,
		users:          storages.UserRepository,
		mappings:       storages.MappingRepository,
		inactivePolicy: inactive,
		deletePolicy:   deletePolicy,
		metrics:        m,
		logger:         log,
		now:            time.Now,
		newPassword: func() (string, error) {
			return utils.RandomPassword(generatedPasswordBytes)
		},
	}, nil
}

// Reconcile implements [ProfileSyncService].
//
// Errors are returned to the caller and also recorded in the result, so a
// batch can report them without aborting.
func (s *profileSyncService) Reconcile(ctx context.Context, user models.LocalUser) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	result := models.SyncResult{LocalUserID: user.ID, Username: user.Username}

	mapping := models.ProfileMapping{LocalUserID: user.ID}
	outcome, err := s.reconcile(ctx, user, &mapping)
	result.RemoteID = mapping.RemoteID

	if err != nil {
		result.Outcome = models.SyncFailed
		result.Error = err.Error()
		s.metrics.RecordSyncOutcome(string(models.SyncFailed))

		event := log.Err(err).
			Str("func", "*profileSyncService.Reconcile").
			Str("username", user.Username).
			Int64("local_user_id", user.ID)
		if mapping.RemoteID != nil {
			event = event.Int64("remote_id", *mapping.RemoteID)
		}
		event.Msg("forum sync failed")

		return result, err
	}

	result.Outcome = outcome
	s.metrics.RecordSyncOutcome(string(outcome))

	log.Info().
		Str("func", "*profileSyncService.Reconcile").
		Str("username", user.Username).
		Int64("local_user_id", user.ID).
		Str("outcome", string(outcome)).
		Msg("forum sync finished")

	return result, nil
}

func (s *profileSyncService) reconcile(ctx context.Context, user models.LocalUser, mapping *models.ProfileMapping) (models.SyncOutcome, error) {
	if user.Privileged {
		return models.SyncSkippedPrivileged, nil
	}

	if !user.Active {
		return s.reconcileInactive(ctx, user, mapping)
	}

	current, err := s.mappings.GetOrCreate(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("loading forum profile mapping: %w", err)
	}
	*mapping = current

	if !mapping.HasRemote() {
		return s.createOrLink(ctx, user, mapping)
	}

	err = s.update(ctx, user, mapping)
	switch {
	case err == nil:
		return models.SyncUpdated, nil
	case !adapter.IsNotFound(err):
		return "", err
	}

	// The linked account is gone. Forget it and go through creation once.
	logger.FromContext(ctx).Info().
		Str("func", "*profileSyncService.reconcile").
		Int64("local_user_id", user.ID).
		Int64("remote_id", *mapping.RemoteID).
		Msg("linked forum account not found, recreating")

	mapping.ClearRemoteID()
	if err = s.mappings.Save(ctx, *mapping); err != nil {
		return "", fmt.Errorf("clearing stale remote id: %w", err)
	}

	outcome, err := s.createOrLink(ctx, user, mapping)
	if err != nil {
		return "", err
	}
	if outcome == models.SyncCreated || outcome == models.SyncCreatedNoID {
		return models.SyncRecreated, nil
	}
	return outcome, nil
}

// reconcileInactive never creates a forum account. With the deactivate
// policy an already linked account receives active=false.
func (s *profileSyncService) reconcileInactive(ctx context.Context, user models.LocalUser, mapping *models.ProfileMapping) (models.SyncOutcome, error) {
	if s.inactivePolicy == config.InactivePolicySkip {
		return models.SyncSkippedInactive, nil
	}

	current, err := s.mappings.Get(ctx, user.ID)
	switch {
	case errors.Is(err, store.ErrMappingNotFound):
		return models.SyncSkippedInactive, nil
	case err != nil:
		return "", fmt.Errorf("loading forum profile mapping: %w", err)
	}
	*mapping = current

	if !mapping.HasRemote() {
		return models.SyncSkippedInactive, nil
	}

	err = s.update(ctx, user, mapping)
	switch {
	case err == nil:
		return models.SyncDeactivated, nil
	case adapter.IsNotFound(err):
		mapping.ClearRemoteID()
		if err = s.mappings.Save(ctx, *mapping); err != nil {
			return "", fmt.Errorf("clearing stale remote id: %w", err)
		}
		return models.SyncSkippedInactive, nil
	default:
		return "", err
	}
}

// createOrLink handles a mapping without remote id: link an existing
// forum account that carries the user's external id, otherwise create one.
func (s *profileSyncService) createOrLink(ctx context.Context, user models.LocalUser, mapping *models.ProfileMapping) (models.SyncOutcome, error) {
	account, found, err := s.forum.FindAccountByExternalID(ctx, user.ExternalID())
	if err != nil {
		return "", err
	}
	if found {
		return s.link(ctx, user, mapping, account.ID)
	}

	req, err := s.createRequest(user)
	if err != nil {
		return "", err
	}

	created, err := s.forum.CreateAccount(ctx, req)
	if err != nil {
		if !adapter.IsAccountTaken(err) {
			return "", err
		}

		// Someone created the account in between, or it exists without our
		// external id being visible yet. Query once more, then give up.
		// Accounts taken under the same username but without our external
		// id are not adopted: the forum API surface we use has no lookup by
		// username, and linking by name alone could hijack a foreign account.
		account, found, findErr := s.forum.FindAccountByExternalID(ctx, user.ExternalID())
		if findErr != nil {
			return "", findErr
		}
		if !found {
			return "", err
		}
		return s.link(ctx, user, mapping, account.ID)
	}

	remoteID, hasID := created.RemoteID()
	if hasID {
		mapping.SetRemoteID(remoteID)
	}
	mapping.MarkSynced(s.now())

	if err = s.mappings.Save(ctx, *mapping); err != nil {
		return "", fmt.Errorf("saving forum profile mapping: %w", err)
	}

	if !hasID {
		logger.FromContext(ctx).Warn().
			Str("func", "*profileSyncService.createOrLink").
			Str("username", user.Username).
			Int64("local_user_id", user.ID).
			Msg("forum accepted account without returning its id")
		return models.SyncCreatedNoID, nil
	}
	return models.SyncCreated, nil
}

// link stores remoteID on the mapping and pushes the local profile to it.
func (s *profileSyncService) link(ctx context.Context, user models.LocalUser, mapping *models.ProfileMapping, remoteID int64) (models.SyncOutcome, error) {
	mapping.SetRemoteID(remoteID)
	if err := s.mappings.Save(ctx, *mapping); err != nil {
		return "", fmt.Errorf("linking forum account %d: %w", remoteID, err)
	}

	if err := s.update(ctx, user, mapping); err != nil {
		return "", err
	}
	return models.SyncLinked, nil
}

// update sends the profile to the linked account and records the sync
// time. The mapping must carry a remote id.
func (s *profileSyncService) update(ctx context.Context, user models.LocalUser, mapping *models.ProfileMapping) error {
	req := models.UpdateAccountRequest{
		Email:  emailOrPlaceholder(user),
		Name:   user.Name(),
		Active: user.Active,
	}

	if err := s.forum.UpdateAccount(ctx, *mapping.RemoteID, req); err != nil {
		return err
	}

	mapping.MarkSynced(s.now())
	if err := s.mappings.Save(ctx, *mapping); err != nil {
		return fmt.Errorf("saving forum profile mapping: %w", err)
	}
	return nil
}

func (s *profileSyncService) createRequest(user models.LocalUser) (models.CreateAccountRequest, error) {
	password, err := s.newPassword()
	if err != nil {
		return models.CreateAccountRequest{}, fmt.Errorf("generating forum password: %w", err)
	}

	return models.CreateAccountRequest{
		Username:               user.Username,
		Email:                  emailOrPlaceholder(user),
		Name:                   user.Name(),
		Password:               password,
		Active:                 user.Active,
		ExternalID:             user.ExternalID(),
		SuppressWelcomeMessage: true,
	}, nil
}

// emailOrPlaceholder returns the user's email, or username@example.com
// when it is empty: the forum rejects accounts without an email.
func emailOrPlaceholder(user models.LocalUser) string {
	if user.Email != "" {
		return user.Email
	}
	return user.Username + "@" + placeholderEmailDomain
}

// ReconcileByID implements [ProfileSyncService].
func (s *profileSyncService) ReconcileByID(ctx context.Context, localUserID int64) (models.SyncResult, error) {
	user, err := s.loadUser(ctx, localUserID)
	if err != nil {
		return models.SyncResult{LocalUserID: localUserID, Outcome: models.SyncFailed, Error: err.Error()}, err
	}
	return s.Reconcile(ctx, user)
}

// PushUpdate implements [ProfileSyncService].
func (s *profileSyncService) PushUpdate(ctx context.Context, user models.LocalUser) (bool, error) {
	log := logger.FromContext(ctx)

	if user.Privileged {
		return false, nil
	}

	mapping, err := s.mappings.Get(ctx, user.ID)
	switch {
	case errors.Is(err, store.ErrMappingNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("loading forum profile mapping: %w", err)
	}

	if !mapping.HasRemote() {
		log.Debug().
			Str("func", "*profileSyncService.PushUpdate").
			Int64("local_user_id", user.ID).
			Msg("user has no forum account yet, nothing to update")
		return false, nil
	}

	if err = s.update(ctx, user, &mapping); err != nil {
		log.Err(err).
			Str("func", "*profileSyncService.PushUpdate").
			Str("username", user.Username).
			Int64("local_user_id", user.ID).
			Int64("remote_id", *mapping.RemoteID).
			Msg("forum update failed")
		return false, err
	}

	s.metrics.RecordSyncOutcome(string(models.SyncUpdated))
	return true, nil
}

// PushUpdateByID implements [ProfileSyncService].
func (s *profileSyncService) PushUpdateByID(ctx context.Context, localUserID int64) (bool, error) {
	user, err := s.loadUser(ctx, localUserID)
	if err != nil {
		return false, err
	}
	return s.PushUpdate(ctx, user)
}

// ReconcileAll implements [ProfileSyncService]. Only a failure to list the
// users or a cancelled ctx ends the run early; the partial report is
// returned alongside the error.
func (s *profileSyncService) ReconcileAll(ctx context.Context) (models.BatchReport, error) {
	log := logger.FromContext(ctx)

	report := models.BatchReport{StartedAt: s.now().UTC()}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*profileSyncService.ReconcileAll").Msg("listing users failed")
		return report, fmt.Errorf("listing users: %w", err)
	}

	report.Results = make([]models.SyncResult, 0, len(users))
	for _, user := range users {
		if err = ctx.Err(); err != nil {
			report.CompletedAt = s.now().UTC()
			return report, err
		}

		// errors are already logged and carried by the result
		result, _ := s.Reconcile(ctx, user)

		report.Total++
		if result.Outcome == models.SyncFailed {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	report.CompletedAt = s.now().UTC()

	log.Info().
		Str("func", "*profileSyncService.ReconcileAll").
		Int("total", report.Total).
		Int("failed", report.Failed).
		Dur("took", report.CompletedAt.Sub(report.StartedAt)).
		Msg("batch forum sync finished")

	return report, nil
}

// HandleUserDeleted implements [ProfileSyncService].
func (s *profileSyncService) HandleUserDeleted(ctx context.Context, localUserID int64) error {
	log := logger.FromContext(ctx)

	mapping, err := s.mappings.Get(ctx, localUserID)
	switch {
	case errors.Is(err, store.ErrMappingNotFound):
		log.Info().
			Str("func", "*profileSyncService.HandleUserDeleted").
			Int64("local_user_id", localUserID).
			Msg("deleted user had no forum profile")
		return nil
	case err != nil:
		return fmt.Errorf("loading forum profile mapping: %w", err)
	}

	if s.deletePolicy == config.DeletePolicyLog {
		event := log.Info().
			Str("func", "*profileSyncService.HandleUserDeleted").
			Int64("local_user_id", localUserID).
			Str("policy", s.deletePolicy)
		if mapping.RemoteID != nil {
			event = event.Int64("remote_id", *mapping.RemoteID)
		}
		event.Msg("local user deleted, forum account left in place")
		return nil
	}

	if mapping.HasRemote() {
		err = s.forum.DeleteAccount(ctx, *mapping.RemoteID, models.DefaultDeleteOptions())
		if err != nil && !adapter.IsNotFound(err) {
			log.Err(err).
				Str("func", "*profileSyncService.HandleUserDeleted").
				Int64("local_user_id", localUserID).
				Int64("remote_id", *mapping.RemoteID).
				Msg("forum account deletion failed")
			return err
		}
	}

	if err = s.mappings.Delete(ctx, localUserID); err != nil {
		return fmt.Errorf("deleting forum profile mapping: %w", err)
	}

	log.Info().
		Str("func", "*profileSyncService.HandleUserDeleted").
		Int64("local_user_id", localUserID).
		Msg("forum account and mapping deleted")
	return nil
}

func (s *profileSyncService) loadUser(ctx context.Context, localUserID int64) (models.LocalUser, error) {
	user, err := s.users.GetUserByID(ctx, localUserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.LocalUser{}, fmt.Errorf("%w: %d", ErrUserNotFound, localUserID)
	}
	if err != nil {
		return models.LocalUser{}, fmt.Errorf("loading user %d: %w", localUserID, err)
	}
	return user, nil
}
