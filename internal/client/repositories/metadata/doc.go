// Package metadata stores small key/value records in the local SQLite
// database.
package metadata
