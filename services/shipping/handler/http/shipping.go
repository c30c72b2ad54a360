package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	"github.com/pawsfam/pawhaven/internal/utils"
	"github.com/pawsfam/pawhaven/services/shipping"
)

// ShippingHandler handles HTTP requests for shipping quotes, sessions and pricing settings
type ShippingHandler struct {
	shippingUC shipping.ShippingUC
}

// NewShippingHandler creates a new shipping HTTP handler
func NewShippingHandler(shippingUC shipping.ShippingUC) *ShippingHandler {
	return &ShippingHandler{
		shippingUC: shippingUC,
	}
}

// ListCountries returns every destination country with its regions
func (h *ShippingHandler) ListCountries(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Countries retrieved successfully", h.shippingUC.ListCountries())
}

// GetCountry returns one country with its regions
func (h *ShippingHandler) GetCountry(c echo.Context) error {
	country, err := h.shippingUC.GetCountry(c.Param("countryId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", country)
}

// GetRegion returns one region of a country
func (h *ShippingHandler) GetRegion(c echo.Context) error {
	region, err := h.shippingUC.GetRegion(c.Param("countryId"), c.Param("regionId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Region retrieved successfully", region)
}

// QuoteResponse is a quote with its whole currency breakdown
type QuoteResponse struct {
	*models.ShippingQuote
	Display models.QuoteDisplay `json:"display"`
}

// Quote prices a route in one transport mode
func (h *ShippingHandler) Quote(c echo.Context) error {
	var req models.QuoteRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ctx := c.Request().Context()
	nrpkg.AddAttribute(ctx, "shipping.mode", string(req.Mode))

	quote, err := h.shippingUC.Quote(ctx, &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote calculated successfully", QuoteResponse{
		ShippingQuote: quote,
		Display:       quote.Display(),
	})
}

// Options prices a route in every transport mode
func (h *ShippingHandler) Options(c echo.Context) error {
	var req models.RouteRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	options, err := h.shippingUC.Options(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipping options calculated successfully", options)
}
