package storage

import (
	"os"
	"sync"

	"cofoundry/internal/config"
	"cofoundry/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var log = logger.GetLogger()

var (
	once sync.Once
	db   *gorm.DB

	modelsMu sync.Mutex
	models   []any
)

// RegisterModels is called from feature model files at package init time,
// so AutoMigrate sees every table without this package importing the
// feature packages.
func RegisterModels(m ...any) {
	modelsMu.Lock()
	defer modelsMu.Unlock()

	models = append(models, m...)
}

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	env := config.GetEnv()

	var dialector gorm.Dialector
	if env.IsTesting {
		// Shared in-memory database so every connection in the test
		// process sees the same tables.
		dialector = sqlite.Open("file::memory:?cache=shared")
	} else {
		dialector = postgres.Open(env.DatabaseDsn)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if env.IsTesting {
		if sqlDb, err := conn.DB(); err == nil {
			// sqlite allows a single writer; serialize access in tests
			sqlDb.SetMaxOpenConns(1)
		}
	}

	modelsMu.Lock()
	registered := make([]any, len(models))
	copy(registered, models)
	modelsMu.Unlock()

	if err := conn.AutoMigrate(registered...); err != nil {
		log.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	db = conn
}
