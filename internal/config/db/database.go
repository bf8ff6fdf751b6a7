package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/domain/audit"
	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/notification"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&issue.Issue{},
		&solution.Solution{},
		&solution.Voter{},
		&notification.Notification{},
		&audit.AuditLog{},
	}
}

func Init() {
	conn, err := Open(config.DbDriver)
	if err != nil {
		slog.Error("Failed to connect to DB", "driver", config.DbDriver, "error", err)
		os.Exit(1)
	}
	DB = conn
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Open connects using the configured driver. Duplicate-key errors are
// translated to gorm.ErrDuplicatedKey for both drivers.
func Open(driver string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(SqliteDSN(config.SqlitePath))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer; queue at the pool instead of failing with SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}
	return conn, nil
}

func PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func SqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
