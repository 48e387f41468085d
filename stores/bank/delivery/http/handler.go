package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	bank bank.UseCase
}

func New(e *echo.Echo, bank_ bank.UseCase, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{bank_}

	delivery.RegisterErrorStatus(http.StatusBadRequest, bank.ErrInvalidAmount, bank.ErrInsufficientBalance)
	delivery.RegisterErrorStatus(http.StatusConflict, bank.ErrTransferRejected)

	g := e.Group("/bank")
	g.GET("/:token/:account", h.balanceOf, middleware.IsValidAddress("token"), middleware.IsValidAddress("account"))
	g.POST("/deposits", h.deposit, authMw.Auth(), authMw.IsAdmin())
	g.POST("/freeze", h.setFrozen, authMw.Auth(), authMw.IsAdmin())
}

// balanceOf
//
//	@Summary		Get balance
//	@Description	Ledger balance of account in token, the zero address is the native currency
//	@Tags			bank
//	@Produce		json
//	@Param			token	path		string	true	"token address"
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Failure		500
//	@Router			/bank/{token}/{account} [get]
func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := domain.Address(c.Param("token")).ToLower()
	account := domain.Address(c.Param("account")).ToLower()

	res, err := h.bank.BalanceOf(ctx, token, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// deposit
//
//	@Summary		Credit a deposit
//	@Description	Credits value observed outside the service to an account
//	@Tags			bank
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.deposit.params	true	"params"
//	@Success		201
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/bank/deposits [post]
func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Token   string `json:"token" validate:"omitempty,eth_address"`
		Account string `json:"account" validate:"required,eth_address"`
		Amount  string `json:"amount" validate:"required,uint256"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	token := domain.Address(p.Token).ToLower()
	account := domain.Address(p.Account).ToLower()
	if err := h.bank.Deposit(ctx, token, account, domain.Amount(p.Amount)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

// setFrozen
//
//	@Summary		Freeze account
//	@Description	A frozen account rejects incoming transfers
//	@Tags			bank
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.setFrozen.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/bank/freeze [post]
func (h *handler) setFrozen(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `json:"account" validate:"required,eth_address"`
		Frozen  bool   `json:"frozen"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.bank.SetFrozen(ctx, domain.Address(p.Account).ToLower(), p.Frozen); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
