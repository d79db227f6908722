package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/shop-admin/config"
	"github.com/d60-Lab/shop-admin/internal/model"
)

// InitDB 按配置打开数据库连接（postgres 生产 / sqlite 测试与本地）
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	logMode := gormlogger.Silent
	if cfg.Database.LogQueries {
		logMode = gormlogger.Info
	}
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logMode)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn = "shop.db"
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	case "postgres", "":
		db, err = gorm.Open(postgres.Open(cfg.Database.PostgresDSN()), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" {
		// 内存库共享单连接，且打开外键约束
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}

// AutoMigrate 建表，父表在前
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(model.AllModels()...)
}
