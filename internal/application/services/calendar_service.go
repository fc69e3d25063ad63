package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ethiocal/core/internal/domain/calendar"
	"github.com/ethiocal/core/internal/domain/entities"
	"github.com/ethiocal/core/internal/infrastructure/logger"
	"github.com/ethiocal/core/internal/infrastructure/metrics"
	"github.com/ethiocal/core/internal/ports"
)

// Conversion sources, used as metric labels
const (
	SourceConvert = "convert"
	SourceToday   = "today"
)

// CalendarService handles Gregorian to Ethiopian conversions
type CalendarService struct {
	validate *validator.Validate
	metrics  *metrics.Metrics
	location *time.Location
	now      func() time.Time
	logger   *logger.Logger
}

// NewCalendarService creates a new calendar service. Today is resolved in loc.
func NewCalendarService(m *metrics.Metrics, loc *time.Location, logger *logger.Logger) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{
		validate: validator.New(),
		metrics:  m,
		location: loc,
		now:      time.Now,
		logger:   logger.WithComponent("calendar_service"),
	}
}

// WithClock replaces the clock used by Today
func (s *CalendarService) WithClock(now func() time.Time) *CalendarService {
	s.now = now
	return s
}

// Convert parses req.Date and converts it to the Ethiopian calendar
func (s *CalendarService) Convert(ctx context.Context, req ports.ConvertRequest) (*ports.ConversionResponse, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		s.metrics.ConversionErrors.WithLabelValues(errorReason(entities.ErrMissingDate)).Inc()
		return nil, fmt.Errorf("%w: %v", entities.ErrMissingDate, err)
	}

	g, err := ParseGregorianDate(req.Date)
	if err != nil {
		s.metrics.ConversionErrors.WithLabelValues(errorReason(err)).Inc()
		return nil, err
	}

	return s.respond(SourceConvert, g), nil
}

// Today converts the current date in the configured location
func (s *CalendarService) Today(ctx context.Context) (*ports.ConversionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := entities.GregorianDateFromTime(s.now().In(s.location))
	return s.respond(SourceToday, g), nil
}

func (s *CalendarService) respond(source string, g entities.GregorianDate) *ports.ConversionResponse {
	eth := calendar.ToEthiopian(g)

	resp := &ports.ConversionResponse{
		Numeric:   calendar.FormatNumeric(eth),
		Verbose:   calendar.FormatVerbose(g, eth),
		Gregorian: g,
		Ethiopian: eth,
	}

	s.metrics.Conversions.WithLabelValues(source).Inc()
	s.logger.LogConversion(source, g.String(), resp.Numeric)

	return resp
}

// ParseGregorianDate parses a YYYY-MM-DD string. Dates that do not exist,
// such as 2023-02-30, are rejected instead of rolled over.
func ParseGregorianDate(raw string) (entities.GregorianDate, error) {
	if raw == "" {
		return entities.GregorianDate{}, entities.ErrMissingDate
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return entities.GregorianDate{}, fmt.Errorf("%w: %q has %d parts", entities.ErrMalformedDate, raw, len(parts))
	}

	var fields [3]int
	for i, part := range parts {
		if !isDigits(part) || (i > 0 && len(part) > 2) {
			return entities.GregorianDate{}, fmt.Errorf("%w: %q is not a date field", entities.ErrMalformedDate, part)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return entities.GregorianDate{}, fmt.Errorf("%w: %q is not a number", entities.ErrMalformedDate, part)
		}
		fields[i] = n
	}

	g := entities.NewGregorianDate(fields[0], fields[1], fields[2])
	if !g.IsValid() {
		return entities.GregorianDate{}, fmt.Errorf("%w: %s", entities.ErrInvalidDate, raw)
	}

	return g, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits, so signs are rejected.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrMissingDate):
		return "missing"
	case errors.Is(err, entities.ErrMalformedDate):
		return "malformed"
	case errors.Is(err, entities.ErrInvalidDate):
		return "invalid"
	default:
		return "unknown"
	}
}
