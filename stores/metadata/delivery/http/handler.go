package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/delivery"
	"github.com/openmint/marketapi/base/metrics"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/metadata"
)

var met metrics.Service

type handler struct {
	metadata metadata.UseCase
}

func New(e *echo.Echo, metadata metadata.UseCase) {
	met = metrics.New("metadata")

	h := &handler{metadata}

	e.POST("/metadata", h.register)

	e.GET("/metadata/:itemId", h.get)
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("register.count", 1)

	p := &metadata.RegisterParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.metadata.Register(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("get.count", 1, "itemId", c.Param("itemId"))

	itemId := domain.ItemId(c.Param("itemId"))

	res, err := h.metadata.Get(ctx, itemId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
