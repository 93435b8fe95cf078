package db

import "context"

// DBType selects the storage backend at startup.
type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// Valid reports whether t names a supported backend.
func (t DBType) Valid() bool {
	return t == Postgres || t == Mongo
}

// DB is the lifecycle contract both backends satisfy.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
