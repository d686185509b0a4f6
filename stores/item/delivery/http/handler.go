package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/delivery"
	"github.com/openmint/marketapi/base/metrics"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/account"
	"github.com/openmint/marketapi/domain/item"
)

var met metrics.Service

type handler struct {
	item     item.Service
	activity account.ActivityHistoryRepo
	txRunner domain.TxRunner
}

func New(e *echo.Echo, itemService item.Service, activity account.ActivityHistoryRepo, txRunner domain.TxRunner) {
	met = metrics.New("item")

	h := &handler{itemService, activity, txRunner}

	e.POST("/items/mint", h.mint)

	g := e.Group("/item/:itemId")

	g.GET("/balance/:address", h.balanceOf)

	g.GET("/activities", h.getActivities)
}

func (h *handler) mint(c echo.Context) error {
	reqCtx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("mint.count", 1, "itemId", c.Param("itemId"))

	p := &struct {
		ItemId domain.ItemId           `json:"itemId" validate:"required"`
		To     domain.Address          `json:"to" validate:"required"`
		Kind   domain.ItemTransferKind `json:"kind"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	kind := p.Kind
	if kind == "" {
		kind = domain.ItemTransferStandard
	}

	err := h.txRunner.RunWithTransaction(reqCtx, func(ctx ctx.Ctx) error {
		if err := h.item.Mint(ctx, kind, p.ItemId, p.To); err != nil {
			return err
		}
		return h.activity.Insert(ctx, &account.ActivityHistory{
			ItemId:   p.ItemId,
			Type:     account.ActivityHistoryTypeMint,
			Account:  p.To,
			Quantity: 1,
			Time:     time.Now(),
		})
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("balance.count", 1, "itemId", c.Param("itemId"))

	itemId := domain.ItemId(c.Param("itemId"))
	address := domain.Address(c.Param("address"))

	amount, err := h.item.BalanceOf(ctx, itemId, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Amount uint64 `json:"amount"`
	}{amount})
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	met.BumpSum("activities.count", 1, "itemId", c.Param("itemId"))

	p := &struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	itemId := domain.ItemId(c.Param("itemId"))

	opts := []account.FindActivityHistoryOptions{
		account.WithItemId(itemId),
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, account.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.activity.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
