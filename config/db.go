package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"oasis-backend/models"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DBLocation is the loc the driver converts time arguments into. Set by ConnectDatabase.
var DBLocation = time.Local

// DSNLocation reads the loc parameter of a driver DSN. The driver defaults to UTC.
func DSNLocation(dsn string) *time.Location {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil || cfg.Loc == nil {
		return time.UTC
	}
	return cfg.Loc
}

// SeedDatabase fills an empty database with the cabins and settings row.
func SeedDatabase(db *gorm.DB) {
	var cabinCount int64
	db.Model(&models.Cabin{}).Count(&cabinCount)
	if cabinCount == 0 {
		cabins := []models.Cabin{
			{Name: "001", MaxCapacity: 2, RegularPrice: decimal.NewFromInt(250), Discount: decimal.Zero, Description: "Cozy cabin for a couple, wood-paneled and close to the lake."},
			{Name: "002", MaxCapacity: 2, RegularPrice: decimal.NewFromInt(350), Discount: decimal.NewFromInt(25), Description: "Retreat for two with a private hot tub."},
			{Name: "003", MaxCapacity: 4, RegularPrice: decimal.NewFromInt(300), Discount: decimal.Zero, Description: "Spacious cabin for a small family."},
			{Name: "004", MaxCapacity: 4, RegularPrice: decimal.NewFromInt(500), Discount: decimal.NewFromInt(50), Description: "Luxury cabin with a forest view."},
			{Name: "005", MaxCapacity: 6, RegularPrice: decimal.NewFromInt(350), Discount: decimal.Zero, Description: "Family cabin with a fireplace."},
			{Name: "006", MaxCapacity: 6, RegularPrice: decimal.NewFromInt(800), Discount: decimal.NewFromInt(100), Description: "Mountain-view cabin with a sauna."},
			{Name: "007", MaxCapacity: 8, RegularPrice: decimal.NewFromInt(600), Discount: decimal.NewFromInt(100), Description: "Group cabin with a games room."},
			{Name: "008", MaxCapacity: 10, RegularPrice: decimal.NewFromInt(1400), Discount: decimal.Zero, Description: "The largest cabin, for big groups."},
		}
		if err := db.Create(&cabins).Error; err != nil {
			zap.L().Warn("failed to seed cabins", zap.Error(err))
		} else {
			zap.L().Info("cabins seeded", zap.Int("count", len(cabins)))
		}
	}

	var settingCount int64
	db.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.DefaultSetting()
		if err := db.Create(&setting).Error; err != nil {
			zap.L().Warn("failed to seed settings", zap.Error(err))
		} else {
			zap.L().Info("settings seeded")
		}
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// ResolveMySQLDSN prefers MYSQL_URL / DATABASE_URL and falls back to DB_* variables.
func ResolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "oasis_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func ConnectDatabase() error {
	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	DBLocation = DSNLocation(dsn)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)
	} else {
		zap.L().Info("cannot get raw sql.DB", zap.Error(err))
	}

	// parent -> child order
	if err := db.AutoMigrate(
		&models.Setting{},
		&models.Cabin{},
		&models.Booking{},
	); err != nil {
		return err
	}

	DB = db
	SeedDatabase(db)
	return nil
}
