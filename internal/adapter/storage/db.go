package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

type DBConfig struct {
	Driver          string
	User            string
	Password        string
	Host            string
	Port            int
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the connection string for the configured driver. TLS is
// always disabled.
func (c DBConfig) DSN() (string, error) {
	switch c.Driver {
	case Postgres.Name:
		pairs := []string{
			"host=" + quotePQ(c.Host),
			"port=" + strconv.Itoa(c.Port),
			"user=" + quotePQ(c.User),
			"password=" + quotePQ(c.Password),
			"dbname=" + quotePQ(c.Name),
			"sslmode=disable",
		}
		return strings.Join(pairs, " "), nil
	case MySQL.Name:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Name
		mc.ParseTime = true
		mc.TLSConfig = "false"
		return mc.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// quotePQ quotes a libpq keyword value.
func quotePQ(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// OpenDB opens the shared connection pool and verifies it with a ping.
func OpenDB(ctx context.Context, cfg DBConfig) (*sql.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}
