package database

import (
	"Quorum/config"
	"Quorum/pkg/log"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

// Open 按驱动打开连接, 唯一键冲突统一翻译为 gorm.ErrDuplicatedKey
func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Driver == config.DriverSQLite {
		// sqlite 只有一个写者
		sqlDB.SetMaxOpenConns(1)
	} else {
		if conf.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
		}
		if conf.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
		}
		if conf.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
		}
	}
	return db, nil
}
