package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethiocal/core/internal/domain/entities"
	"github.com/ethiocal/core/internal/infrastructure/logger"
	"github.com/ethiocal/core/internal/infrastructure/metrics"
	"github.com/ethiocal/core/internal/ports"
)

func newTestService(t *testing.T) (*CalendarService, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return NewCalendarService(m, time.UTC, logger.NewNop()), m
}

func TestParseGregorianDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    entities.GregorianDate
		wantErr error
	}{
		{"2023-09-11", entities.NewGregorianDate(2023, 9, 11), nil},
		{"2024-2-29", entities.NewGregorianDate(2024, 2, 29), nil},
		{"0999-01-05", entities.NewGregorianDate(999, 1, 5), nil},
		{"", entities.GregorianDate{}, entities.ErrMissingDate},
		{"2023/09/11", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-09", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-09-11-01", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-Sep-11", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023--11", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"+2023-09-11", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-+9-11", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-09-011", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-009-11", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-09- 1", entities.GregorianDate{}, entities.ErrMalformedDate},
		{"2023-13-01", entities.GregorianDate{}, entities.ErrInvalidDate},
		{"2023-00-10", entities.GregorianDate{}, entities.ErrInvalidDate},
		{"2023-02-29", entities.GregorianDate{}, entities.ErrInvalidDate},
		{"2023-04-31", entities.GregorianDate{}, entities.ErrInvalidDate},
		{"2023-04-00", entities.GregorianDate{}, entities.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseGregorianDate(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalendarService_Convert(t *testing.T) {
	svc, m := newTestService(t)

	resp, err := svc.Convert(context.Background(), ports.ConvertRequest{Date: "2023-09-11"})
	require.NoError(t, err)

	assert.Equal(t, "2016-01-01", resp.Numeric)
	assert.Equal(t, "ሰኞ, መስከረም 01, 2016", resp.Verbose)
	assert.Equal(t, entities.EthiopianDate{Year: 2016, Month: 1, Day: 1}, resp.Ethiopian)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues(SourceConvert)))
}

func TestCalendarService_ConvertErrors(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	_, err := svc.Convert(ctx, ports.ConvertRequest{})
	assert.ErrorIs(t, err, entities.ErrMissingDate)

	_, err = svc.Convert(ctx, ports.ConvertRequest{Date: "yesterday"})
	assert.ErrorIs(t, err, entities.ErrMalformedDate)

	_, err = svc.Convert(ctx, ports.ConvertRequest{Date: "2023-02-30"})
	assert.ErrorIs(t, err, entities.ErrInvalidDate)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionErrors.WithLabelValues("missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionErrors.WithLabelValues("malformed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionErrors.WithLabelValues("invalid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Conversions.WithLabelValues(SourceConvert)))
}

func TestCalendarService_Today(t *testing.T) {
	svc, m := newTestService(t)
	svc.WithClock(func() time.Time {
		return time.Date(2024, time.September, 11, 8, 30, 0, 0, time.UTC)
	})

	resp, err := svc.Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2017-01-01", resp.Numeric)
	assert.Equal(t, entities.NewGregorianDate(2024, 9, 11), resp.Gregorian)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues(SourceToday)))
}

func TestCalendarService_TodayUsesLocation(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	addis := time.FixedZone("EAT", 3*60*60)
	svc := NewCalendarService(m, addis, logger.NewNop()).WithClock(func() time.Time {
		// Still September 10 in UTC, already New Year in Addis Ababa.
		return time.Date(2023, time.September, 10, 22, 0, 0, 0, time.UTC)
	})

	resp, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2016-01-01", resp.Numeric)
}

func TestCalendarService_TodayCancelled(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Today(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
