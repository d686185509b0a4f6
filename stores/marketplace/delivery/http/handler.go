package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/delivery"
	"github.com/openmint/marketapi/base/metrics"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/marketplace"
	"github.com/openmint/marketapi/middleware"
)

var met metrics.Service

type handler struct {
	marketplace marketplace.UseCase
}

func New(e *echo.Echo, marketplace marketplace.UseCase) {
	met = metrics.New("marketplace")

	h := &handler{marketplace}

	g := e.Group("/marketplace")

	g.POST("", h.initialize)

	g.GET("", h.get)

	g.GET("/stats", h.getStats, middleware.CacheHttp(30*time.Second))
}

func (h *handler) initialize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("initialize.count", 1)

	p := &struct {
		Authority domain.Address `json:"authority" validate:"required"`
		Treasury  domain.Address `json:"treasury" validate:"required"`
		FeeBps    uint16         `json:"feeBps"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.marketplace.Initialize(ctx, p.Authority, p.Treasury, p.FeeBps)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("get.count", 1)

	res, err := h.marketplace.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getStats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("stats.count", 1)

	res, err := h.marketplace.GetStats(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
