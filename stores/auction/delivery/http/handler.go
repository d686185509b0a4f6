package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/delivery"
	"github.com/openmint/marketapi/base/metrics"
	"github.com/openmint/marketapi/base/pricefomatter"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/auction"
)

var met metrics.Service

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auction auction.UseCase) {
	met = metrics.New("auction")

	h := &handler{auction}

	gs := e.Group("/auctions")

	gs.POST("", h.create)

	gs.GET("", h.search)

	g := e.Group("/auction/:itemId")

	g.GET("", h.get)

	g.POST("/bid", h.placeBid)

	g.POST("/settle", h.settle)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("create.count", 1)

	p := &auction.CreateParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Create(ctx, *p)
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
		Offset   int             `query:"offset"`
		Limit    int             `query:"limit"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []auction.FindAllOptions{}

	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}

	if p.IsActive != nil {
		opts = append(opts, auction.WithIsActive(*p.IsActive))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, auction.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.auction.Search(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId := domain.ItemId(c.Param("itemId"))

	met.BumpSum("get.count", 1, "itemId", string(itemId))

	res, err := h.auction.Get(ctx, itemId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		*auction.Auction
		CurrentBidDisplay string `json:"currentBidDisplay"`
	}{res, pricefomatter.DisplayAmount(res.CurrentBid)})
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.BidParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p.ItemId = domain.ItemId(c.Param("itemId"))

	met.BumpSum("bid.count", 1, "itemId", string(p.ItemId))

	res, err := h.auction.PlaceBid(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) settle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId := domain.ItemId(c.Param("itemId"))

	met.BumpSum("settle.count", 1, "itemId", string(itemId))

	res, err := h.auction.Settle(ctx, itemId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
