// Package fault holds the error taxonomy shared by the loader, the renderer
// and the configuration layer. None of these errors are recovered from; they
// travel up to the caller and abort the run.
package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// A required input file is missing.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// A record in an input file does not have the shape its position requires.
// Expected and Actual are token (or pair) counts; when the shape is right but
// a token is not a number, Err carries the conversion failure.
type MalformedRecordError struct {
	File     string
	Line     int
	Kind     string
	Index    int // -1 when the record kind only occurs once
	Expected int
	Actual   int
	Err      error
}

func (e *MalformedRecordError) Error() string {
	record := e.Kind
	if e.Index >= 0 {
		record = fmt.Sprintf("%s #%d", e.Kind, e.Index)
	}
	msg := fmt.Sprintf("%s:%d: malformed %s", e.File, e.Line, record)
	if e.Expected != e.Actual {
		unit := "tokens"
		if e.Kind == "point row" {
			unit = "pairs"
		}
		msg += fmt.Sprintf(": expected %d %s, got %d", e.Expected, unit, e.Actual)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Style tables, grid policies or other settings cannot serve the scene.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Msg)
}

// Configf builds a ConfigurationError with a formatted message.
func Configf(field, format string, args ...interface{}) error {
	return errors.WithStack(&ConfigurationError{Field: field, Msg: fmt.Sprintf(format, args...)})
}

func IsMalformed(err error) bool {
	var target *MalformedRecordError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *FileNotFoundError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
