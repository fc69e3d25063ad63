package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ethiocal/core/internal/domain/entities"
	"github.com/ethiocal/core/internal/infrastructure/logger"
	"github.com/ethiocal/core/internal/ports"
)

// Client-facing error messages
const (
	MsgMissingDate   = "Missing date parameter in yyyy-mm-dd format"
	MsgMalformedDate = "Date must be in yyyy-mm-dd format"
	MsgInvalidDate   = "Invalid date provided"
)

// CalendarHandler handles calendar conversion requests
type CalendarHandler struct {
	calendarService ports.CalendarService
	logger          *logger.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService ports.CalendarService, logger *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// Convert godoc
// @Summary Convert a Gregorian date
// @Description Convert a Gregorian date to the Ethiopian calendar
// @Tags calendar
// @Produce json
// @Param date query string true "Gregorian date in yyyy-mm-dd format"
// @Success 200 {object} ports.ConversionResponse
// @Failure 400 {object} ports.ErrorResponse
// @Router /convert [get]
func (h *CalendarHandler) Convert(c echo.Context) error {
	var req ports.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgMalformedDate)
	}

	resp, err := h.calendarService.Convert(c.Request().Context(), req)
	if err != nil {
		h.logger.Debugw("Conversion rejected", "date", req.Date, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, errorMessage(err)).SetInternal(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Today godoc
// @Summary Convert today's date
// @Description Convert the current date to the Ethiopian calendar
// @Tags calendar
// @Produce json
// @Success 200 {object} ports.ConversionResponse
// @Router /today [get]
func (h *CalendarHandler) Today(c echo.Context) error {
	resp, err := h.calendarService.Today(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrMissingDate):
		return MsgMissingDate
	case errors.Is(err, entities.ErrMalformedDate):
		return MsgMalformedDate
	default:
		return MsgInvalidDate
	}
}
