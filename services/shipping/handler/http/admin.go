package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// ListPricingConfigs returns the pricing settings of every transport mode
func (h *ShippingHandler) ListPricingConfigs(c echo.Context) error {
	configs, err := h.shippingUC.ListPricingConfigs(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pricing configurations retrieved successfully", configs)
}

// GetPricingConfig returns the pricing settings of one transport mode
func (h *ShippingHandler) GetPricingConfig(c echo.Context) error {
	cfg, err := h.shippingUC.GetPricingConfig(c.Request().Context(), models.TransportMode(c.Param("mode")))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pricing configuration retrieved successfully", cfg)
}

// UpdatePricingConfig replaces the pricing settings of one transport mode.
// The mode in the path wins over any mode in the body.
func (h *ShippingHandler) UpdatePricingConfig(c echo.Context) error {
	var req models.PricingConfig
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	req.Mode = models.TransportMode(c.Param("mode"))

	ctx := c.Request().Context()
	saved, err := h.shippingUC.UpdatePricingConfig(ctx, &req)
	if err != nil {
		return errorResponse(c, err)
	}

	callerID, _ := c.Get("caller_id").(string)
	logger.InfoCtx(ctx, "Admin updated pricing configuration",
		logger.Mode(string(saved.Mode)),
		logger.String("admin_id", callerID))

	return utils.SuccessResponse(c, http.StatusOK, "Pricing configuration updated successfully", saved)
}
