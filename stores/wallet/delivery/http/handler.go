package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/delivery"
	"github.com/openmint/marketapi/base/metrics"
	"github.com/openmint/marketapi/base/pricefomatter"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/wallet"
	"github.com/openmint/marketapi/middleware"
)

var met metrics.Service

type handler struct {
	ledger wallet.Ledger
}

func New(e *echo.Echo, ledger wallet.Ledger) {
	met = metrics.New("wallet")

	h := &handler{ledger}

	g := e.Group("/wallet/:address", middleware.IsValidAddress("address"))

	g.GET("", h.get)

	g.POST("/deposit", h.deposit)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	met.BumpSum("get.count", 1, "address", string(address))

	amount, err := h.ledger.Balance(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Address       domain.Address `json:"address"`
		Amount        uint64         `json:"amount"`
		AmountDisplay string         `json:"amountDisplay"`
	}{address, amount, pricefomatter.DisplayAmount(amount)})
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &struct {
		Amount uint64 `json:"amount" validate:"required"`
	}{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address := domain.Address(c.Param("address"))

	met.BumpSum("deposit.count", 1, "address", string(address))

	if err := h.ledger.Deposit(ctx, address, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
