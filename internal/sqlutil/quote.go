// Package sqlutil provides identifier quoting for the run history tables.
package sqlutil

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect selects the identifier quoting and placeholder rules of a SQL backend.
type Dialect string

const (
	// MySQL quotes identifiers with backticks.
	MySQL Dialect = "mysql"
	// SQLite quotes identifiers with double quotes.
	SQLite Dialect = "sqlite"
)

// ParseDialect maps a configured driver name to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported dialect: %s", driver)
	}
}

// Quote quotes an identifier for the dialect, doubling any embedded quote character.
// Example (mysql): "my`table" -> "`my“table`"
// Example (sqlite): `my"table` -> `"my""table"`
func (d Dialect) Quote(name string) string {
	if d == SQLite {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return QuoteIdentifier(name)
}

// QuoteSafe validates the identifier before quoting it.
func (d Dialect) QuoteSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return d.Quote(name), nil
}

// QuoteIdentifier quotes a MySQL identifier with backticks.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// validIdentifierRegex restricts identifiers to alphanumerics and underscore.
var validIdentifierRegex = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier checks that name only contains alphanumeric characters and underscores.
func IsValidIdentifier(name string) bool {
	return validIdentifierRegex.MatchString(name)
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}
