package postgres

import (
	"fmt"
)

func ConnectionBuilder(host string, port int, user, password, dbName, sslMode, timezone string) string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		host,
		port,
		user,
		password,
		dbName,
		sslMode,
		timezone,
	)

	return dsn
}

// URLBuilder renders the same settings as a postgres:// URL for the migrate tool.
func URLBuilder(host string, port int, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", user, password, host, port, dbName, sslMode)
}
