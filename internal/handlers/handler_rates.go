package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/dto"
	"github.com/gin-gonic/gin"
)

// RatesSourceHeader tells API clients whether rates are live or fallback.
const RatesSourceHeader = "X-Rates-Source"

type ratesHandler struct {
	rateService portssvc.RateSvcFacade
}

func registerRatesRoutes(r *gin.Engine, api *gin.RouterGroup, rs portssvc.RateSvcFacade) {
	h := &ratesHandler{rateService: rs}

	r.GET("/rates", h.showRates)
	api.GET("/rates", h.getRates)
}

// getRates godoc
// @Summary Current rate table
// @Description Returns every symbol with its rate against USD as a flat object. GOLD and SILVER are USD per ounce.
// @Tags rates
// @Produce  json
// @Success 200 {object} map[string]number
// @Header  200 {string} X-Rates-Source "live or fallback"
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	table := h.rateService.GetRates(c.Request.Context())
	c.Header(RatesSourceHeader, string(table.Source))
	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}

func (h *ratesHandler) showRates(c *gin.Context) {
	table := h.rateService.GetRates(c.Request.Context())
	c.HTML(http.StatusOK, "rates.tmpl", page("Exchange Rates", table, gin.H{
		"Entries": table.Entries(),
	}))
}
