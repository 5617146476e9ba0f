package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/dto"
	"github.com/SscSPs/fxcalc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NextTokenHeader carries the token for the following /api/history page.
const NextTokenHeader = "X-Next-Token"

// TotalCountHeader carries the number of conversions in the log.
const TotalCountHeader = "X-Total-Count"

// historyHandler serves the conversion log.
type historyHandler struct {
	conversionService portssvc.ConversionSvcFacade
	defaultLimit      int
}

func newHistoryHandler(cs portssvc.ConversionSvcFacade, defaultLimit int) *historyHandler {
	return &historyHandler{
		conversionService: cs,
		defaultLimit:      defaultLimit,
	}
}

func registerHistoryRoutes(r *gin.Engine, api *gin.RouterGroup, cs portssvc.ConversionSvcFacade, defaultLimit int) {
	h := newHistoryHandler(cs, defaultLimit)

	r.GET("/history", h.showHistory)
	api.GET("/history", h.listHistory)
}

// showHistory renders the most recent conversions.
func (h *historyHandler) showHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	records, err := h.conversionService.ListRecent(c.Request.Context(), h.defaultLimit)
	if err != nil {
		status := statusForError(err)
		logger.Error("Failed to list conversion history", slog.String("error", err.Error()))
		c.HTML(status, "history.tmpl", page("Conversion History", domain.RateTable{}, gin.H{
			"Error": clientMessage(err, status),
		}))
		return
	}

	extra := gin.H{"Records": records}
	if total, ok := h.total(c.Request.Context(), logger); ok {
		extra["Total"] = total
	}
	c.HTML(http.StatusOK, "history.tmpl", page("Conversion History", domain.RateTable{}, extra))
}

// total is best effort; a failed count never fails the page.
func (h *historyHandler) total(ctx context.Context, logger *slog.Logger) (int64, bool) {
	n, err := h.conversionService.CountConversions(ctx)
	if err != nil {
		logger.Warn("Failed to count conversions", slog.String("error", err.Error()))
		return 0, false
	}
	return n, true
}

// listHistory godoc
// @Summary List recent conversions
// @Description Returns the most recent conversions, newest first. When a full page is returned the X-Next-Token header holds the token for the next page.
// @Tags conversions
// @Produce  json
// @Param   limit query int false "Maximum number of records (1-100)" default(10)
// @Param   next_token query string false "Token from a previous X-Next-Token header"
// @Success 200 {array} dto.ConversionRecordResponse
// @Header  200 {string} X-Next-Token "Token for the next page"
// @Header  200 {integer} X-Total-Count "Number of conversions in the log"
// @Failure 400 {object} map[string]string "Invalid limit or token"
// @Failure 500 {object} map[string]string "Failed to list conversions"
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid history limit", slog.String("limit", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	records, nextToken, err := h.conversionService.ListPage(c.Request.Context(), limit, c.Query("next_token"))
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to list conversion history", slog.String("error", err.Error()))
		} else {
			logger.Warn("Rejected history request", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": clientMessage(err, status)})
		return
	}

	if nextToken != "" {
		c.Header(NextTokenHeader, nextToken)
	}
	if total, ok := h.total(c.Request.Context(), logger); ok {
		c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	}
	c.JSON(http.StatusOK, dto.ToListConversionRecordResponse(records))
}
