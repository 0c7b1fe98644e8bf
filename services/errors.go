package services

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds of the dataset pipeline. Match them with errors.Is.
var (
	ErrFileNotFound = errors.New("dataset file not found")
	ErrParse        = errors.New("dataset parse error")
	ErrComputation  = errors.New("metrics computation error")
)

// DatasetError records where a load, derive or query step failed.
type DatasetError struct {
	Kind   error
	Op     string
	Path   string
	Column string
	Row    int // 1-based data row, 0 when not row specific
	Err    error
}

func (e *DatasetError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	sb.WriteString(": ")
	sb.WriteString(e.Kind.Error())
	if e.Path != "" {
		fmt.Fprintf(&sb, " (file %s)", e.Path)
	}
	if e.Column != "" {
		fmt.Fprintf(&sb, " column %q", e.Column)
	}
	if e.Row > 0 {
		fmt.Fprintf(&sb, " row %d", e.Row)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DatasetError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func missingColumnError(op, column string) error {
	return &DatasetError{Kind: ErrComputation, Op: op, Column: column, Err: errors.New("missing column")}
}
