package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justkhutty/weather/internal/domain/report"
	apperrors "github.com/justkhutty/weather/pkg/errors"
)

// Handler wires the HTTP transport to the report domain service.
type Handler struct {
	reportSvc report.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(reportSvc report.Service, logger *slog.Logger) *Handler {
	return &Handler{
		reportSvc: reportSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// Report returns the current conditions, advice, and narration for a city.
func (h *Handler) Report(c *gin.Context) {
	req := report.Request{City: c.Param("city")}

	resp, err := h.reportSvc.Report(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "report_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Speak synthesizes the spoken weather report and returns it as base64 MP3.
func (h *Handler) Speak(c *gin.Context) {
	var req report.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.reportSvc.Speak(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "speech_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapDomainError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "city_not_found"):
		status = http.StatusNotFound
		code = "city_not_found"
	case apperrors.IsCode(err, "weather_data_error"):
		status = http.StatusBadGateway
		code = "weather_data_error"
	case apperrors.IsCode(err, "speech_error"):
		status = http.StatusBadGateway
		code = "speech_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
