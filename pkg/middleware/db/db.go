package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labworks/labman/pkg/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

type LogConf struct {
	Level string
}

type Config struct {
	Driver  string
	Path    string
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	LogConf LogConf
}

// Datastore wraps the shared gorm handle. Store implementations embed it
// and go through DBWithContext so transactions propagate via context.
type Datastore struct {
	db *gorm.DB
}

var dataStore *Datastore

type txKey struct{}

func InitDB(ctx context.Context, conf *Config) {
	gdb, err := gorm.Open(openDialector(conf), &gorm.Config{
		Logger:         newDBLogger(conf.LogConf.Level),
		TranslateError: true,
	})
	if err != nil {
		logger.Fatalf(ctx, "init database fail driver: %s, err: %+v", conf.Driver, err)
		return
	}

	if err := gdb.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		logger.Errorf(ctx, "install gorm tracing plugin err: %+v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql db fail err: %+v", err)
		return
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	dataStore = &Datastore{db: gdb}
}

func openDialector(conf *Config) gorm.Dialector {
	switch strings.ToLower(conf.Driver) {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.Host, conf.User, conf.PW, conf.DBName, conf.Port)
		return postgres.Open(dsn)
	default:
		return sqlite.Open(conf.Path)
	}
}

func newDBLogger(level string) gormlogger.Interface {
	mode := gormlogger.Warn
	switch strings.ToLower(level) {
	case "debug":
		mode = gormlogger.Info
	case "error":
		mode = gormlogger.Error
	case "silent":
		mode = gormlogger.Silent
	}
	return gormlogger.Default.LogMode(mode)
}

func CloseDB(ctx context.Context) {
	if dataStore == nil {
		return
	}
	sqlDB, err := dataStore.db.DB()
	if err != nil {
		logger.Errorf(ctx, "close database get handle err: %+v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Errorf(ctx, "close database err: %+v", err)
	}
}

func DB() *Datastore {
	return dataStore
}

// SetDB replaces the shared datastore; tests use it with an in-memory
// sqlite handle.
func SetDB(gdb *gorm.DB) {
	dataStore = &Datastore{db: gdb}
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext returns the transaction bound to ctx when inside ExecTx,
// otherwise the shared handle scoped to ctx.
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return d.db.WithContext(ctx)
}

// ExecTx runs fn inside one transaction; nested store calls pick the
// transaction up through ctx.
func (d *Datastore) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
