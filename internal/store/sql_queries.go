package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goldram69/gemdjsso/models"
)

var (
	userColumns    = []string{"id", "username", "email", "display_name", "active", "privileged"}
	mappingColumns = []string{"local_user_id", "remote_id", "last_synced_at"}
)

func buildGetUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.LocalUser{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.LocalUser{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildGetMappingQuery(b sq.StatementBuilderType, localUserID int64) (string, []any, error) {
	return b.Select(mappingColumns...).
		From(models.ProfileMapping{}.TableName()).
		Where(sq.Eq{"local_user_id": localUserID}).
		ToSql()
}

// buildInsertMappingQuery inserts an empty mapping and is a no-op when one
// already exists. PostgreSQL and SQLite both accept this ON CONFLICT form.
func buildInsertMappingQuery(b sq.StatementBuilderType, localUserID int64) (string, []any, error) {
	return b.Insert(models.ProfileMapping{}.TableName()).
		Columns("local_user_id").
		Values(localUserID).
		Suffix("ON CONFLICT (local_user_id) DO NOTHING").
		ToSql()
}

func buildUpdateMappingQuery(b sq.StatementBuilderType, m models.ProfileMapping) (string, []any, error) {
	return b.Update(models.ProfileMapping{}.TableName()).
		Set("remote_id", nullInt64(m.RemoteID)).
		Set("last_synced_at", nullTime(m.LastSyncedAt)).
		Where(sq.Eq{"local_user_id": m.LocalUserID}).
		ToSql()
}

func buildDeleteMappingQuery(b sq.StatementBuilderType, localUserID int64) (string, []any, error) {
	return b.Delete(models.ProfileMapping{}.TableName()).
		Where(sq.Eq{"local_user_id": localUserID}).
		ToSql()
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: v.UTC(), Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.LocalUser, error) {
	var u models.LocalUser
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, &u.Active, &u.Privileged)
	return u, err
}

func scanMapping(row rowScanner) (models.ProfileMapping, error) {
	var (
		m        models.ProfileMapping
		remoteID sql.NullInt64
		syncedAt sql.NullTime
	)
	if err := row.Scan(&m.LocalUserID, &remoteID, &syncedAt); err != nil {
		return models.ProfileMapping{}, err
	}
	if remoteID.Valid {
		m.SetRemoteID(remoteID.Int64)
	}
	if syncedAt.Valid {
		m.MarkSynced(syncedAt.Time)
	}
	return m, nil
}
