package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/dsec/internal/domain"
	"github.com/bnema/dsec/internal/metrics"
	"github.com/bnema/dsec/internal/ports"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	driverName    = "sqlite"
	unitExtension = ".db"
	rootDirMode   = 0o700
	unitFileMode  = 0o600
	busyTimeoutMS = 5000
	timeLayout    = time.RFC3339Nano
)

// SQLite may leave these next to a unit file; they belong to the unit.
var unitSidecarSuffixes = []string{"-journal", "-wal", "-shm"}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS secrets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key TEXT UNIQUE NOT NULL,
		value TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS apps_meta (name TEXT, created_at TEXT)`,
}

const (
	insertMetaSQL   = `INSERT OR IGNORE INTO apps_meta (rowid, name, created_at) VALUES (1, ?, ?)`
	selectMetaSQL   = `SELECT name, created_at FROM apps_meta WHERE rowid = 1`
	listSecretsSQL  = `SELECT key, value, created_at, updated_at FROM secrets ORDER BY key`
	getSecretSQL    = `SELECT key, value, created_at, updated_at FROM secrets WHERE key = ?`
	countSecretsSQL = `SELECT COUNT(*) FROM secrets`
	deleteSecretSQL = `DELETE FROM secrets WHERE key = ?`
	upsertSecretSQL = `INSERT INTO secrets (key, value, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type secretRow struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type metaRow struct {
	Name      sql.NullString `db:"name"`
	CreatedAt sql.NullString `db:"created_at"`
}

// Units stores every app in its own SQLite file under root. Each call opens
// the unit, runs its statements and closes it again; no handle outlives the
// call.
type Units struct {
	root   string
	logger *zap.Logger
}

var _ ports.UnitStore = (*Units)(nil)

func NewUnits(root string, logger *zap.Logger) *Units {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Units{root: filepath.Clean(root), logger: logger}
}

func (u *Units) Root() string {
	return u.root
}

func (u *Units) Create(ctx context.Context, id domain.AppID, name string, createdAt time.Time) (err error) {
	defer observe("create", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := u.pathForApp(id)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(u.root, rootDirMode); err != nil {
		return storageError("create storage root", id, err)
	}

	fresh, err := createUnitFile(path)
	if err != nil {
		return storageError("create unit file", id, err)
	}
	err = u.withUnit(ctx, id, true, func(db *sqlx.DB) error {
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Join(err, tx.Rollback())
			}
		}
		if _, err := tx.ExecContext(ctx, insertMetaSQL, name, formatTime(createdAt)); err != nil {
			return errors.Join(err, tx.Rollback())
		}

		return tx.Commit()
	})
	if err != nil {
		if fresh {
			if cleanupErr := removeUnitFiles(path); cleanupErr != nil {
				u.logger.Warn("remove partially created unit", zap.String("app_id", string(id)), zap.Error(cleanupErr))
			}
		}
		return storageError("create unit", id, err)
	}

	u.logger.Debug("created storage unit", zap.String("app_id", string(id)), zap.String("path", path))
	return nil
}

func (u *Units) Destroy(ctx context.Context, id domain.AppID) (err error) {
	defer observe("destroy", time.Now(), &err)

	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := u.pathForApp(id)
	if err != nil {
		return err
	}

	if err := removeUnitFiles(path); err != nil {
		return storageError("destroy unit", id, err)
	}

	u.logger.Debug("destroyed storage unit", zap.String("app_id", string(id)), zap.String("path", path))
	return nil
}

func (u *Units) Exists(_ context.Context, id domain.AppID) bool {
	path, err := u.pathForApp(id)
	if err != nil {
		return false
	}

	return isRegularFile(path)
}

func (u *Units) Metadata(ctx context.Context, id domain.AppID) (meta ports.UnitMetadata, err error) {
	defer observe("metadata", time.Now(), &err)

	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		var row metaRow
		if err := db.GetContext(ctx, &row, selectMetaSQL); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		meta.Name = row.Name.String
		if row.CreatedAt.Valid {
			meta.CreatedAt = parseTime(row.CreatedAt.String)
		}
		return nil
	})
	if err != nil {
		return ports.UnitMetadata{}, storageError("read unit metadata", id, err)
	}

	return meta, nil
}

func (u *Units) ListSecrets(ctx context.Context, id domain.AppID) (secrets []domain.Secret, err error) {
	defer observe("list_secrets", time.Now(), &err)

	var rows []secretRow
	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows, listSecretsSQL)
	})
	if err != nil {
		return nil, storageError("list secrets", id, err)
	}

	secrets = make([]domain.Secret, 0, len(rows))
	for _, row := range rows {
		secrets = append(secrets, row.toDomain())
	}

	return secrets, nil
}

func (u *Units) GetSecret(ctx context.Context, id domain.AppID, key string) (secret domain.Secret, found bool, err error) {
	defer observe("get_secret", time.Now(), &err)

	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		var row secretRow
		if err := db.GetContext(ctx, &row, getSecretSQL, key); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		secret = row.toDomain()
		found = true
		return nil
	})
	if err != nil {
		return domain.Secret{}, false, storageError(fmt.Sprintf("get secret %q", key), id, err)
	}

	return secret, found, nil
}

func (u *Units) UpsertSecret(ctx context.Context, id domain.AppID, key string, value string, now time.Time) (err error) {
	defer observe("upsert_secret", time.Now(), &err)

	stamp := formatTime(now)
	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		_, err := db.ExecContext(ctx, upsertSecretSQL, key, value, stamp, stamp)
		return err
	})
	if err != nil {
		return storageError(fmt.Sprintf("upsert secret %q", key), id, err)
	}

	return nil
}

func (u *Units) RestoreSecret(ctx context.Context, id domain.AppID, secret domain.Secret) (err error) {
	defer observe("restore_secret", time.Now(), &err)

	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		_, err := db.ExecContext(ctx, upsertSecretSQL, secret.Key, secret.Value, formatTime(secret.CreatedAt), formatTime(secret.UpdatedAt))
		return err
	})
	if err != nil {
		return storageError(fmt.Sprintf("restore secret %q", secret.Key), id, err)
	}

	return nil
}

func (u *Units) DeleteSecret(ctx context.Context, id domain.AppID, key string) (err error) {
	defer observe("delete_secret", time.Now(), &err)

	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		_, err := db.ExecContext(ctx, deleteSecretSQL, key)
		return err
	})
	if err != nil {
		return storageError(fmt.Sprintf("delete secret %q", key), id, err)
	}

	return nil
}

func (u *Units) CountSecrets(ctx context.Context, id domain.AppID) (count int, err error) {
	defer observe("count_secrets", time.Now(), &err)

	err = u.withUnit(ctx, id, false, func(db *sqlx.DB) error {
		return db.GetContext(ctx, &count, countSecretsSQL)
	})
	if err != nil {
		return 0, storageError("count secrets", id, err)
	}

	return count, nil
}

// withUnit opens the unit for the duration of fn and always closes it.
// Without create the unit must already exist.
func (u *Units) withUnit(ctx context.Context, id domain.AppID, create bool, fn func(db *sqlx.DB) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := u.pathForApp(id)
	if err != nil {
		return err
	}

	db, err := sqlx.Open(driverName, unitDSN(path, create))
	if err != nil {
		return fmt.Errorf("open unit: %w", err)
	}
	db.SetMaxOpenConns(1)
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close unit: %w", closeErr))
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("open unit: %w", err)
	}

	return fn(db)
}

func (u *Units) pathForApp(id domain.AppID) (string, error) {
	raw := string(id)
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: app id is empty", domain.ErrValidation)
	}
	if raw != filepath.Base(raw) || raw == "." || raw == ".." || strings.ContainsAny(raw, `/\`) {
		return "", fmt.Errorf("%w: invalid app id %q", domain.ErrValidation, raw)
	}

	return filepath.Join(u.root, raw+unitExtension), nil
}

func unitDSN(path string, create bool) string {
	mode := "rw"
	if create {
		mode = "rwc"
	}

	query := url.Values{}
	query.Set("mode", mode)
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))

	dsn := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: query.Encode()}
	return dsn.String()
}

func removeUnitFiles(path string) error {
	// The main file goes first: a failure there leaves the unit and its hot
	// journal intact, and a failure afterwards leaves only orphaned sidecars.
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	for _, suffix := range unitSidecarSuffixes {
		if err := os.Remove(path + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	return nil
}

// createUnitFile creates an empty unit file with owner-only permissions so
// SQLite never creates it under the process umask. fresh is false when the
// file already existed.
func createUnitFile(path string) (fresh bool, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, unitFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}

	return true, f.Close()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func storageError(op string, id domain.AppID, err error) error {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %s for app %q: %w", domain.ErrStorageFailure, op, id, err)
}

func observe(operation string, start time.Time, errp *error) {
	metrics.ObserveStoreOperation(operation, time.Since(start), *errp)
}

func (r secretRow) toDomain() domain.Secret {
	return domain.Secret{
		Key:       r.Key,
		Value:     r.Value,
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(timeLayout)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
