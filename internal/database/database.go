package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bankpulse/internal/config"
	"bankpulse/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 500 * time.Millisecond

// DB wraps the gorm handle shared by the aggregate repository and the ops API.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the Postgres pool and pings it. Query logging goes through log,
// at WARN for slow statements and errors only.
func New(ctx context.Context, cfg *config.DatabaseConfig, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(slogWriter{log}, logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, config: cfg}, nil
}

// slogWriter routes gorm's printf-style query log into slog.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}

// AutoMigrate creates the aggregate tables and the processed-batch ledger.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.MerchantTxnCount{},
		&models.TxnSummary{},
		&models.GenderStats{},
		&models.ProcessedBatch{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize connects and brings the schema up to date. SQL migrations are
// preferred; AutoMigrate is the fallback when the migrations directory is
// missing, as in a bare binary deployment.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := New(ctx, &cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := migrateSchema(ctx, db, cfg.Database.MigrationsPath, log); err != nil {
			db.Close()
			return nil, err
		}
	}

	log.Info("database initialized",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
	)

	return db, nil
}

func migrateSchema(ctx context.Context, db *DB, migrationsPath string, log *slog.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runErr := NewMigrationRunner(sqlDB, migrationsPath).Run(ctx)
	if runErr == nil {
		return nil
	}

	log.Warn("migration runner failed, falling back to GORM AutoMigrate",
		slog.String("error", runErr.Error()),
	)
	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
