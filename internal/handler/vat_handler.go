package handler

import (
	"errors"
	"net/http"

	"financialtools/internal/service"
	"financialtools/pkg/money"
	"financialtools/pkg/response"

	"github.com/gin-gonic/gin"
)

type VATHandler struct {
	vatService service.VATService
}

func NewVATHandler(vatService service.VATService) *VATHandler {
	return &VATHandler{vatService: vatService}
}

func (h *VATHandler) RegisterRoutes(router *gin.RouterGroup) {
	vat := router.Group("/api/vat")
	{
		vat.GET("/bands", h.ListBands)
		vat.POST("/quote", h.Quote)
		vat.POST("/convert", h.Convert)
	}

	router.POST("/api/amounts/decode", h.DecodeRecord)
	router.GET("/api/rates/describe", h.DescribeRate)
}

// ListBands returns every recognized VAT band
// @Summary      List VAT bands
// @Description  Lists the recognized VAT bands, the non assujetti band first
// @Tags         vat
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.VATBandResponse}
// @Router       /api/vat/bands [get]
func (h *VATHandler) ListBands(c *gin.Context) {
	bands := h.vatService.ListBands(c.Request.Context())
	c.JSON(http.StatusOK, response.Success(http.StatusOK, bands))
}

// Quote builds an amount from an inclusive or exclusive figure
// @Summary      Quote amount
// @Description  Builds a VAT classified amount and returns the figures valid for its classification
// @Tags         vat
// @Accept       json
// @Produce      json
// @Param        payload  body      service.QuoteRequest  true  "Quote Payload"
// @Success      200      {object}  response.Response{data=service.AmountResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/vat/quote [post]
func (h *VATHandler) Quote(c *gin.Context) {
	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quote, err := h.vatService.Quote(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// Convert converts a figure between inclusive and exclusive of VAT
// @Summary      Convert amount
// @Description  Adds or removes VAT at a band without building an amount; the result is returned raw and rounded
// @Tags         vat
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ConvertRequest  true  "Convert Payload"
// @Success      200      {object}  response.Response{data=service.ConvertResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/vat/convert [post]
func (h *VATHandler) Convert(c *gin.Context) {
	var req service.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.vatService.Convert(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// DecodeRecord rebuilds an amount from its interchange record
// @Summary      Decode amount record
// @Description  Rebuilds an amount from {amountExcludingVat, vatRate, isAssujetti}; all three keys are required
// @Tags         amounts
// @Accept       json
// @Produce      json
// @Param        payload  body      money.Record  true  "Amount Record"
// @Success      200      {object}  response.Response{data=service.AmountResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/amounts/decode [post]
func (h *VATHandler) DecodeRecord(c *gin.Context) {
	var record money.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		if errors.Is(err, money.ErrInvalidArgument) {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.vatService.DecodeRecord(c.Request.Context(), record)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// DescribeRate resolves and formats a rate
// @Summary      Describe rate
// @Description  Resolves a rate from optional values and fallbacks; given values win over fallbacks, rate over percentage
// @Tags         rates
// @Produce      json
// @Param        rate                query     number  false  "Rate as a fraction (0.1 = 10%)"
// @Param        percentage          query     number  false  "Rate as a percentage"
// @Param        default_rate        query     number  false  "Fallback fraction"
// @Param        default_percentage  query     number  false  "Fallback percentage"
// @Success      200                 {object}  response.Response{data=service.RateResponse}
// @Failure      400                 {object}  response.Response
// @Router       /api/rates/describe [get]
func (h *VATHandler) DescribeRate(c *gin.Context) {
	var req service.RateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid query parameters: "+err.Error()))
		return
	}

	res, err := h.vatService.DescribeRate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, money.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, response.ErrorWithCode(http.StatusBadRequest, "invalid_argument", err.Error()))
	case errors.Is(err, service.ErrRateAbsent):
		c.JSON(http.StatusBadRequest, response.ErrorWithCode(http.StatusBadRequest, "rate_absent", err.Error()))
	case errors.Is(err, money.ErrAmbiguity):
		c.JSON(http.StatusConflict, response.ErrorWithCode(http.StatusConflict, "ambiguity", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
}
