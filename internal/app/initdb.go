package app

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chainrent/chainrent/config"
	"github.com/chainrent/chainrent/internal/domain"
	"github.com/chainrent/chainrent/pkg/common"
)

func getDatabase(cfg config.DBConfig) *gorm.DB {
	logLevel := gormlogger.Silent
	if cfg.Debug {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.Dsn()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db
}

// checkSuper ensures the default back-office operator exists after boot.
func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "chainrent"

	var operator domain.SysOpr
	err := a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := common.HashPassword(defaultPassword)
		if herr != nil {
			zap.L().Error("failed to hash default password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Email:     "N/A",
			Username:  superUsername,
			Password:  hashed,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
			return
		}
		zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
	case operator.Status != common.ENABLED:
		if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).
			Update("status", common.ENABLED).Error; err != nil {
			zap.L().Error("failed to re-enable super admin", zap.Error(err))
			return
		}
		zap.L().Warn("re-enabled default super admin account", zap.String("username", superUsername))
	}
}
