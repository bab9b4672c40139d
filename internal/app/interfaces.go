package app

import (
	"gorm.io/gorm"

	"github.com/chainrent/chainrent/config"
	"github.com/chainrent/chainrent/internal/actions"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// ActionsProvider provides the entity action modules
type ActionsProvider interface {
	Actions() *actions.Registry
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	DBProvider
	ConfigProvider
	ActionsProvider

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	DropAll()
}
