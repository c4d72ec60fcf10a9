package db

import (
	"fmt"
	"time"

	"github.com/smallbiznis/feefeefee/internal/config"
	"github.com/smallbiznis/feefeefee/internal/observability/logger"
	"gorm.io/gorm"
)

// Open connects with the configured dialect and pool limits. Queries are logged
// through the zap-backed gorm logger at DATABASE_LOG_LEVEL, with queries slower
// than DATABASE_SLOW_QUERY_MS raised to warnings.
func Open(cfg config.Config) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(logger.GormConfig{
			Level:         logger.ParseGormLevel(cfg.DBLogLevel),
			SlowThreshold: time.Duration(cfg.DBSlowQueryMs) * time.Millisecond,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	}
	if cfg.DBMaxOpenConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	}

	return conn, nil
}
