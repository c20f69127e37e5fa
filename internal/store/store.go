package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/metrics"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Store struct{ DB *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{DB: db} }

// Open connects to the configured database and verifies the connection.
// SQLite is limited to one connection so in-memory databases and the
// foreign_keys pragma survive for the life of the pool.
func Open(ctx context.Context, driver, dsn string, gl logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if gl == nil {
		gl = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gl, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table, index and foreign key.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func first[T any](ctx context.Context, db *gorm.DB, id uint, preload ...string) (*T, error) {
	var out T
	q := db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	if err := q.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// findWhere returns every row matching query, never a nil slice.
func findWhere[T any](ctx context.Context, db *gorm.DB, preload []string, query any, args ...any) ([]T, error) {
	out := []T{}
	q := db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	if query != nil {
		q = q.Where(query, args...)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func create[T any](ctx context.Context, db *gorm.DB, v *T) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

// update writes only the given columns and returns the row as persisted.
// An empty field set leaves the row untouched.
func update[T any](ctx context.Context, db *gorm.DB, id uint, fields map[string]any, preload ...string) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := db.WithContext(ctx).Model(&row).Omit(clause.Associations).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return first[T](ctx, db, id, preload...)
}

// remove deletes one row by primary key. Dependent rows go with it through
// ON DELETE CASCADE.
func remove[T any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// exists reports whether a row with the given primary key is present and
// records the outcome under entity.
func exists[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (bool, error) {
	var row T
	res := db.WithContext(ctx).Limit(1).Find(&row, id)
	if res.Error != nil {
		metrics.ReferenceChecks.WithLabelValues(entity, "error").Inc()
		return false, res.Error
	}
	found := res.RowsAffected > 0
	metrics.ReferenceChecks.WithLabelValues(entity, outcome(found)).Inc()
	return found, nil
}

func outcome(found bool) string {
	if found {
		return "found"
	}
	return "missing"
}
