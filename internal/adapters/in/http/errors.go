package http

import (
	"errors"
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// businessRuleErrors are rejections of well-formed requests by domain rules.
// They map to 401, matching how the API has always reported them; not-found
// lookups are treated the same way rather than as 404s.
var businessRuleErrors = []error{
	errs.ErrObjectNotFound,
	delivery.ErrPickupOutOfHours,
	delivery.ErrDailyWithdrawalLimitExceeded,
	delivery.ErrAlreadyCanceled,
	delivery.ErrAlreadyPickedUp,
	delivery.ErrAlreadyDelivered,
	delivery.ErrAlreadyRemoved,
	delivery.ErrStillOpen,
	recipient.ErrDuplicateName,
	recipient.ErrAlreadyRemoved,
	recipient.ErrHasOpenDelivery,
	deliveryman.ErrDuplicateEmail,
	deliveryman.ErrAlreadyRemoved,
	deliveryman.ErrHasOpenDelivery,
	commands.ErrNotDeliveryAssignee,
}

// validationErrors are malformed or missing inputs, rejected before any
// domain rule runs.
var validationErrors = []error{
	errs.ErrValueIsRequired,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
}

// respondError maps an application error onto the API's error contract:
// validation failures → 400, business-rule rejections and not-found → 401,
// anything else → 500 with a generic message.
func respondError(ctx echo.Context, err error) error {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
	}

	for _, sentinel := range businessRuleErrors {
		if errors.Is(err, sentinel) {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
	}

	ctx.Logger().Error(err)
	return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// badRequest reports a request that could not be decoded at all.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
