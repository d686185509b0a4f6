package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/delivery"
	"github.com/openmint/marketapi/base/metrics"
	"github.com/openmint/marketapi/base/pricefomatter"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/listing"
	"github.com/openmint/marketapi/middleware"
)

var met metrics.Service

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, listing listing.UseCase) {
	met = metrics.New("listing")

	h := &handler{listing}

	gs := e.Group("/listings")

	gs.POST("", h.create)

	gs.GET("", h.search, middleware.CacheHttp(10*time.Second))

	g := e.Group("/listing/:itemId")

	g.GET("", h.get, h.listingRequestCount())

	g.POST("/buy", h.buy)

	g.DELETE("", h.cancel)
}

func (h *handler) listingRequestCount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			met.BumpSum("get.count", 1, "itemId", c.Param("itemId"))
			return next(c)
		}
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("create.count", 1)

	p := &listing.CreateParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Create(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &struct {
		Seller   *domain.Address `query:"seller"`
		IsActive *bool           `query:"isActive"`
		Status   *listing.Status `query:"status"`
		Offset   int             `query:"offset"`
		Limit    int             `query:"limit"`
		Cursor   *string         `query:"cursor"`
		Size     int             `query:"size"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptions{}

	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}

	if p.IsActive != nil {
		opts = append(opts, listing.WithIsActive(*p.IsActive))
	}

	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}

	if p.Cursor != nil {
		size := p.Size
		if size == 0 {
			size = 10
		}
		opts = append(opts, listing.WithCursor(*p.Cursor, size))
	} else if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.listing.Search(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId := domain.ItemId(c.Param("itemId"))

	res, err := h.listing.Get(ctx, itemId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		*listing.Listing
		PriceDisplay string `json:"priceDisplay"`
	}{res, pricefomatter.DisplayAmount(res.Price)})
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.BuyParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p.ItemId = domain.ItemId(c.Param("itemId"))

	met.BumpSum("buy.count", 1, "itemId", string(p.ItemId))

	res, err := h.listing.Buy(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		*listing.Receipt
		PriceDisplay string `json:"priceDisplay"`
	}{res, pricefomatter.DisplayAmount(res.Price)})
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &struct {
		Seller domain.Address `json:"seller" validate:"required"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	itemId := domain.ItemId(c.Param("itemId"))

	met.BumpSum("cancel.count", 1, "itemId", string(itemId))

	if err := h.listing.Cancel(ctx, p.Seller, itemId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
