package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethiocal/core/internal/application/services"
	"github.com/ethiocal/core/internal/infrastructure/logger"
	"github.com/ethiocal/core/internal/infrastructure/metrics"
	"github.com/ethiocal/core/internal/ports"
)

func newTestHandler(t *testing.T) (*echo.Echo, *CalendarHandler) {
	t.Helper()

	e := echo.New()

	svc := services.NewCalendarService(metrics.New(prometheus.NewRegistry()), time.UTC, logger.NewNop()).
		WithClock(func() time.Time { return time.Date(2000, time.September, 12, 12, 0, 0, 0, time.UTC) })

	return e, NewCalendarHandler(svc, logger.NewNop())
}

func TestCalendarHandler_Convert(t *testing.T) {
	e, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/convert?date=2023-09-11", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Convert(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"numeric":"2016-01-01","verbose":"ሰኞ, መስከረም 01, 2016"}`, rec.Body.String())
}

func TestCalendarHandler_ConvertErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"missing", "", MsgMissingDate},
		{"empty", "?date=", MsgMissingDate},
		{"two parts", "?date=2023-09", MsgMalformedDate},
		{"not numeric", "?date=2023-09-xx", MsgMalformedDate},
		{"impossible", "?date=2023-02-30", MsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, h := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/convert"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Convert(c)
			require.Error(t, err)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, tt.want, he.Message)
		})
	}
}

func TestCalendarHandler_Today(t *testing.T) {
	e, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/today", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Today(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"numeric":"1993-01-02","verbose":"ማክሰኞ, መስከረም 02, 1993"}`, rec.Body.String())
}

type failingService struct{}

func (failingService) Convert(context.Context, ports.ConvertRequest) (*ports.ConversionResponse, error) {
	return nil, context.DeadlineExceeded
}

func (failingService) Today(context.Context) (*ports.ConversionResponse, error) {
	return nil, context.DeadlineExceeded
}

func TestCalendarHandler_TodayError(t *testing.T) {
	e := echo.New()
	h := NewCalendarHandler(failingService{}, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/today", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.ErrorIs(t, h.Today(c), context.DeadlineExceeded)
}
