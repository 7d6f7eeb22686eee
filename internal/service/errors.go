package service

import (
	"errors"

	"github.com/UnknownOlympus/haversine/internal/dataset"
	"github.com/UnknownOlympus/haversine/internal/generator"
	"github.com/UnknownOlympus/haversine/internal/haversine"
)

// ErrorClass maps an error to the label used by the run error metric.
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, generator.ErrInvalidCount), errors.Is(err, haversine.ErrInvalidRadius):
		return "invalid_argument"
	case errors.Is(err, dataset.ErrParse):
		return "parse"
	case errors.Is(err, dataset.ErrIO):
		return "io"
	case errors.Is(err, haversine.ErrEmptyDataset):
		return "division"
	default:
		return "other"
	}
}
