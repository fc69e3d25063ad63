package ports

import (
	"context"

	"github.com/ethiocal/core/internal/domain/entities"
)

// CalendarService interface for calendar conversion operations
type CalendarService interface {
	Convert(ctx context.Context, req ConvertRequest) (*ConversionResponse, error)
	Today(ctx context.Context) (*ConversionResponse, error)
}

// Request/Response Types

type ConvertRequest struct {
	Date string `query:"date" json:"date" validate:"required"`
}

// ConversionResponse is the rendered form of a converted date returned by
// both the HTTP API and the CLI.
type ConversionResponse struct {
	Numeric string `json:"numeric"`
	Verbose string `json:"verbose"`

	Gregorian entities.GregorianDate `json:"-"`
	Ethiopian entities.EthiopianDate `json:"-"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
