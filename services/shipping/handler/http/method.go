package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// ConfirmShippingMethod turns a ready quote session into a cart shipping method
func (h *ShippingHandler) ConfirmShippingMethod(c echo.Context) error {
	var req models.ConfirmMethodRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	method, err := h.shippingUC.ConfirmShippingMethod(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Shipping method confirmed successfully", method)
}
