package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "github.com/pawsfam/pawhaven/internal/pkg/errors"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	reqvalidator "github.com/pawsfam/pawhaven/internal/pkg/validator"
	"github.com/pawsfam/pawhaven/internal/utils"
)

// kindStatus maps shipping error kinds to HTTP status codes
var kindStatus = map[apperrors.Kind]int{
	apperrors.KindUnresolvedLocation:   http.StatusUnprocessableEntity,
	apperrors.KindTransportDisabled:    http.StatusConflict,
	apperrors.KindRouteOutOfRange:      http.StatusConflict,
	apperrors.KindInvalidConfiguration: http.StatusInternalServerError,
	apperrors.KindConfigurationLoad:    http.StatusServiceUnavailable,
}

// errorResponse writes the response for an error returned by the use case
func errorResponse(c echo.Context, err error) error {
	ctx := c.Request().Context()

	if kind := apperrors.KindOf(err); kind != "" {
		status := kindStatus[kind]
		if status >= http.StatusInternalServerError {
			nrpkg.NoticeError(ctx, err)
			logger.ErrorCtx(ctx, "Shipping request failed",
				logger.String("error_kind", string(kind)),
				logger.String("path", c.Path()),
				logger.Err(err))
		}
		return utils.KindErrorResponse(c, status, string(kind), apperrors.MessageOf(err))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	}

	nrpkg.NoticeError(ctx, err)
	logger.ErrorCtx(ctx, "Unexpected shipping error",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}

// bindRequest decodes the body into req and validates it. The returned
// error text is safe to show to the client.
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.New("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errors.New(reqvalidator.Message(validationErrors))
		}
		return err
	}
	return nil
}
