package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-dashboard/models"
)

func baseMySQLConfig() *mysqldriver.Config {
	mc := mysqldriver.NewConfig()
	mc.Net = "tcp"
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	mc := baseMySQLConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Addr = net.JoinHostPort(host, port)
	mc.DBName = dbName
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "parseTime", "loc":
			// fixed by baseMySQLConfig
		default:
			mc.Params[key] = values[0]
		}
	}
	return mc.FormatDSN(), dbName, nil
}

// ResolveMySQLDSN picks MYSQL_URL, then DATABASE_URL, then the DB_* parts.
// A URL without the mysql:// scheme is used as a driver DSN as is.
func ResolveMySQLDSN(cfg *Config) (string, string, error) {
	raw := strings.TrimSpace(cfg.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(cfg.DatabaseURL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		parsed, err := mysqldriver.ParseDSN(raw)
		if err != nil {
			return "", "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, parsed.DBName, nil
	}

	mc := baseMySQLConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPass
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	return mc.FormatDSN(), cfg.DBName, nil
}

// ConnectDatabase opens MySQL and migrates the daily records table.
func ConnectDatabase(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	dsn, dbName, err := ResolveMySQLDSN(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("open mysql %s: %w", dbName, err)
	}

	if err := db.AutoMigrate(&models.DailyRecordRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.WithField("database", dbName).Info("database connection established")
	return db, nil
}
