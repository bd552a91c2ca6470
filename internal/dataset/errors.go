package dataset

import "fmt"

// SchemaError reports a required column that is absent from the input file.
// The run aborts rather than silently skipping the metric.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: required column %q not found in input", e.Column)
}

// ParseError reports a cell that could not be coerced to a number. Row is
// 1-based and counts data rows, excluding the header.
type ParseError struct {
	Column string
	Row    int
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: column %q row %d: cannot parse %q as a number", e.Column, e.Row, e.Value)
}
