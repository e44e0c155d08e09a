// Package chem implements the bench chemistry math behind the calculator
// endpoints: dilution series, solution preparation, buffer recipes and
// inventory projections. Every function is a pure computation over its
// arguments and is safe for concurrent use.
package chem

import "fmt"

// ValidationError reports a calculator input that fails its precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError reports a malformed custom-buffer component line.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("component line %d: %s", e.Line, e.Reason)
}

// UnsupportedError reports a buffer configuration the calculator recognizes
// but cannot compute.
type UnsupportedError struct {
	Reason string
}

func (e *UnsupportedError) Error() string { return e.Reason }

func requirePositive(field string, v float64) error {
	if v <= 0 {
		return &ValidationError{Field: field, Reason: "must be greater than zero"}
	}
	return nil
}

// Plot kinds understood by the charting collaborator.
const (
	PlotLine = "line"
	PlotBar  = "bar"
)

// PlotPoint is one datum of a PlotSeries. Label carries the category name
// for bar charts.
type PlotPoint struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// PlotSeries describes a chart for the presentation layer to render. The
// package computes the data; rendering is not its concern.
type PlotSeries struct {
	Title  string      `json:"title"`
	Kind   string      `json:"kind"`
	XLabel string      `json:"x_label"`
	YLabel string      `json:"y_label"`
	LogY   bool        `json:"log_y"`
	Points []PlotPoint `json:"points"`
}
