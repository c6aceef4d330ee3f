package sqlerr

import "fmt"

// Code classifies a database error into a driver-agnostic category.
type Code int

const (
	// Other covers every error that is not a recognized constraint class.
	Other Code = iota
	ForeignKeyViolation
	UniqueViolation
	NotNullViolation
	CheckViolation
)

// Severity mirrors the severity field reported by the database server.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
	SeverityWarning
)

// MapCode maps a Postgres SQLSTATE onto a Code.
//
// Only the integrity-constraint class (23xxx) gets distinct codes;
// everything else is Other.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity maps the server's severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Error is the structured form of a database server error.
//
// It keeps the original SQLSTATE plus the schema metadata the server
// reported (table, column, constraint), which the handler uses to build
// machine codes and user-facing messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	// driverErr is the original driver error, kept for Unwrap.
	driverErr error
}

func (e *Error) Error() string {
	if e.TableName != "" {
		return fmt.Sprintf("database error %s on table %s: %s", e.DatabaseCode, e.TableName, e.Message)
	}
	return fmt.Sprintf("database error %s: %s", e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}
