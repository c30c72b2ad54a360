package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawsfam/pawhaven/internal/pkg/models"
	"github.com/pawsfam/pawhaven/internal/utils"
	"github.com/pawsfam/pawhaven/services/shipping/selection"
)

// CreateSession opens a quote session for a pet
func (h *ShippingHandler) CreateSession(c echo.Context) error {
	var req models.CreateSessionRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	session, err := h.shippingUC.CreateSession(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Quote session created successfully", session)
}

// GetSession returns the current state of a quote session
func (h *ShippingHandler) GetSession(c echo.Context) error {
	session, err := h.shippingUC.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Quote session retrieved successfully", session)
}

// SelectCountry sets the destination country of a session
func (h *ShippingHandler) SelectCountry(c echo.Context) error {
	var req models.SelectCountryRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	session, err := h.shippingUC.SelectCountry(c.Request().Context(), c.Param("id"), req.CountryID)
	return sessionResponse(c, session, err)
}

// SelectRegion sets the destination region of a session
func (h *ShippingHandler) SelectRegion(c echo.Context) error {
	var req models.SelectRegionRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	session, err := h.shippingUC.SelectRegion(c.Request().Context(), c.Param("id"), req.RegionID)
	return sessionResponse(c, session, err)
}

// SetCompanion toggles the travel companion of a session
func (h *ShippingHandler) SetCompanion(c echo.Context) error {
	var req models.CompanionRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	session, err := h.shippingUC.SetCompanion(c.Request().Context(), c.Param("id"), *req.HasCompanion)
	return sessionResponse(c, session, err)
}

// SetTier switches the service tier of a session
func (h *ShippingHandler) SetTier(c echo.Context) error {
	var req models.TierRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	session, err := h.shippingUC.SetTier(c.Request().Context(), c.Param("id"), req.Tier)
	return sessionResponse(c, session, err)
}

// SetMode switches the transport mode of a session
func (h *ShippingHandler) SetMode(c echo.Context) error {
	var req models.ModeRequest
	if err := bindRequest(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	session, err := h.shippingUC.SetMode(c.Request().Context(), c.Param("id"), req.Mode)
	return sessionResponse(c, session, err)
}

// sessionResponse returns the updated session. A session in the Error state is
// still a successful update; the failure is part of the body.
func sessionResponse(c echo.Context, session *selection.Selection, err error) error {
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Quote session updated successfully", session)
}
