package config

import (
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMySQLDSN_FromParts(t *testing.T) {
	cfg := &Config{DBUser: "hotel", DBPass: "s3cret", DBHost: "db", DBPort: "3307", DBName: "dashboard"}

	dsn, name, err := ResolveMySQLDSN(cfg)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", name)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "hotel", parsed.User)
	assert.Equal(t, "s3cret", parsed.Passwd)
	assert.Equal(t, "db:3307", parsed.Addr)
	assert.Equal(t, "dashboard", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

func TestResolveMySQLDSN_URLPrecedence(t *testing.T) {
	cfg := &Config{
		MySQLURL:    "mysql://app:pw@mysql.internal/hotel?timeout=5s&parseTime=false",
		DatabaseURL: "mysql://other:pw@elsewhere:3306/ignored",
		DBName:      "parts",
	}

	dsn, name, err := ResolveMySQLDSN(cfg)
	require.NoError(t, err)
	assert.Equal(t, "hotel", name)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "mysql.internal:3306", parsed.Addr)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "5s", parsed.Timeout.String())
}

func TestResolveMySQLDSN_DatabaseURL(t *testing.T) {
	dsn, name, err := ResolveMySQLDSN(&Config{DatabaseURL: "mysql://app:pw@db:3310/analytics"})
	require.NoError(t, err)
	assert.Equal(t, "analytics", name)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:3310", parsed.Addr)
}

func TestResolveMySQLDSN_RawDriverDSN(t *testing.T) {
	raw := "app:pw@tcp(db:3306)/hotel?parseTime=true"

	dsn, name, err := ResolveMySQLDSN(&Config{DatabaseURL: raw})

	require.NoError(t, err)
	assert.Equal(t, raw, dsn)
	assert.Equal(t, "hotel", name)
}

func TestResolveMySQLDSN_Errors(t *testing.T) {
	_, _, err := ResolveMySQLDSN(&Config{MySQLURL: "mysql://app:pw@db:3306/"})
	assert.Error(t, err)

	_, _, err = ResolveMySQLDSN(&Config{DatabaseURL: "not a dsn"})
	assert.Error(t, err)
}
