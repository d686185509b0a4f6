package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrBadParamInput) ||
			errors.Is(err, domain.ErrInvalidFee) ||
			errors.Is(err, domain.ErrInvalidPrice) ||
			errors.Is(err, domain.ErrInvalidRoyalty) ||
			errors.Is(err, domain.ErrInvalidReservePrice) ||
			errors.Is(err, domain.ErrInvalidDuration) ||
			errors.Is(err, domain.ErrInvalidAddress):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrConflict) ||
			errors.Is(err, domain.ErrAlreadyListed) ||
			errors.Is(err, domain.ErrAlreadyOnAuction) ||
			errors.Is(err, domain.ErrListingNotActive) ||
			errors.Is(err, domain.ErrAuctionNotActive) ||
			errors.Is(err, domain.ErrAuctionEnded) ||
			errors.Is(err, domain.ErrAuctionNotEnded) ||
			errors.Is(err, domain.ErrBidTooLow) ||
			errors.Is(err, domain.ErrBidBelowStarting):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrNotOwner):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrInsufficientBalance) ||
			errors.Is(err, domain.ErrInsufficientItemBalance) ||
			errors.Is(err, domain.ErrInvalidMetadata):
			status = http.StatusUnprocessableEntity
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
