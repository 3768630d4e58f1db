package app

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tallerguerrero/storefront/config"
	"github.com/tallerguerrero/storefront/internal/domain"
	"github.com/tallerguerrero/storefront/internal/mailer"
	"github.com/tallerguerrero/storefront/internal/store"
	"github.com/tallerguerrero/storefront/internal/uploads"
)

// Application wires configuration, storage, uploads and the notifier together.
// The storage backend is selected once at startup; handlers receive the
// concrete stores through explicit injection, not ambient globals.
type Application struct {
	appConfig    *config.AppConfig
	gormDB       *gorm.DB
	products     store.ProductStore
	appointments store.AppointmentStore
	uploads      *uploads.Manager
	mailer       *mailer.Mailer
}

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Products() store.ProductStore {
	return a.products
}

func (a *Application) Appointments() store.AppointmentStore {
	return a.appointments
}

func (a *Application) Uploads() *uploads.Manager {
	return a.uploads
}

func (a *Application) Mailer() *mailer.Mailer {
	return a.mailer
}

// DB returns the gorm handle, nil when the file backend is active.
func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

func (a *Application) Init() error {
	cfg := a.appConfig
	a.initLogger()

	switch cfg.StoreBackend {
	case "", "file":
		ps, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return err
		}
		as, err := store.NewFileAppointmentStore(cfg.DataDir)
		if err != nil {
			return err
		}
		a.products = ps
		a.appointments = as
		zap.S().Infof("using file store, data dir: %s", cfg.DataDir)
	case "postgres":
		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN is required for the postgres backend")
		}
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return errors.Wrap(err, "connect database")
		}
		if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
			return errors.Wrap(err, "migrate database")
		}
		a.gormDB = db
		a.products = store.NewTableStore(db)
		a.appointments = store.NewTableAppointmentStore(db)
		zap.S().Info("using postgres table store")
	default:
		return errors.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	um, err := uploads.NewManager(cfg.UploadsDir)
	if err != nil {
		return err
	}
	a.uploads = um

	a.mailer = mailer.New(cfg.SMTP, cfg.AdminEmail)
	if !a.mailer.Configured() {
		zap.S().Warn("SMTP not configured, appointment notifications will not be sent")
	}

	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release flushes application resources before shutdown.
func (a *Application) Release() {
	_ = zap.L().Sync()
}
