package db

import (
	"database/sql"
)

// Database abstracts the lifecycle of a SQL store so main can wire a
// backend without knowing the driver.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
