package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/dto"
	"github.com/SscSPs/fxcalc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler serves the conversion form and the JSON conversion endpoint.
type converterHandler struct {
	conversionService portssvc.ConversionSvcFacade
	rateService       portssvc.RateSvcFacade
}

func newConverterHandler(cs portssvc.ConversionSvcFacade, rs portssvc.RateSvcFacade) *converterHandler {
	return &converterHandler{
		conversionService: cs,
		rateService:       rs,
	}
}

// registerConverterRoutes registers "/" and "/api/convert". Conversion posts go through
// the limit middlewares.
func registerConverterRoutes(r *gin.Engine, api *gin.RouterGroup, cs portssvc.ConversionSvcFacade, rs portssvc.RateSvcFacade, limit ...gin.HandlerFunc) {
	h := newConverterHandler(cs, rs)

	r.GET("/", h.showForm)
	r.POST("/", append(limit, h.convertForm)...)
	api.POST("/convert", append(limit, h.convertJSON)...)
}

// showForm renders the conversion form with the symbols of the current rate table.
func (h *converterHandler) showForm(c *gin.Context) {
	table := h.rateService.GetRates(c.Request.Context())
	renderForm(c, http.StatusOK, table, dto.ConvertForm{FromCurrency: "USD", ToCurrency: "EUR"}, nil, "")
}

// convertForm handles the posted form and re-renders the page with the result.
func (h *converterHandler) convertForm(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	ctx := c.Request.Context()
	// One table per request serves both the conversion and the re-rendered form
	table := h.rateService.GetRates(ctx)

	var form dto.ConvertForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind conversion form", slog.String("error", err.Error()))
		renderForm(c, http.StatusBadRequest, table, form, nil, bindingMessage(err))
		return
	}

	req, err := form.ToRequest()
	if err != nil {
		logger.Warn("Invalid conversion amount", slog.String("amount", form.Amount))
		renderForm(c, http.StatusBadRequest, table, form, nil, clientMessage(err, http.StatusBadRequest))
		return
	}

	result, err := h.conversionService.ConvertWithRates(ctx, table, req)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Conversion failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Conversion rejected", slog.String("error", err.Error()))
		}
		renderForm(c, status, table, form, nil, clientMessage(err, status))
		return
	}

	renderForm(c, http.StatusOK, table, form, result, "")
}

func renderForm(c *gin.Context, status int, table domain.RateTable, form dto.ConvertForm, result *dto.ConversionResult, errMsg string) {
	c.HTML(status, "index.tmpl", page("Currency Converter", table, gin.H{
		"Symbols": table.Symbols(),
		"Form":    form,
		"Result":  result,
		"Error":   errMsg,
	}))
}

// convertJSON godoc
// @Summary Convert an amount
// @Description Converts between any two symbols of the current rate table and records the conversion
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertAPIRequest true "Conversion request"
// @Success 200 {object} dto.ConversionResult
// @Failure 400 {object} map[string]string "Invalid input or unknown currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Conversion could not be recorded"
// @Router /convert [post]
func (h *converterHandler) convertJSON(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ConvertAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req.ToRequest())
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Conversion failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Conversion rejected", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": clientMessage(err, status)})
		return
	}

	c.JSON(http.StatusOK, result)
}
