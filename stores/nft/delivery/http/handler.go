package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/nft"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	nft nft.UseCase
}

func New(e *echo.Echo, nftUC nft.UseCase, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{nftUC}

	delivery.RegisterErrorStatus(http.StatusNotFound, nft.ErrTokenNotFound)
	delivery.RegisterErrorStatus(http.StatusBadRequest, nft.ErrInvalidRecipient, nft.ErrWrongFrom)
	delivery.RegisterErrorStatus(http.StatusForbidden, nft.ErrNotOwnerNorApproved)
	delivery.RegisterErrorStatus(http.StatusConflict, nft.ErrTokenExists)

	g := e.Group("/nfts")
	g.GET("/:contract/:tokenId", h.get, middleware.IsValidAddress("contract"))
	g.POST("/approve", h.approve, authMw.Auth())
	g.POST("/approvalForAll", h.setApprovalForAll, authMw.Auth())
	g.POST("/mint", h.mint, authMw.Auth(), authMw.IsAdmin())
}

// get
//
//	@Summary		Get token custody
//	@Description	Current owner and approved address of a token
//	@Tags			nfts
//	@Produce		json
//	@Param			contract	path		string	true	"nft contract"
//	@Param			tokenId		path		string	true	"token id"
//	@Success		200			{object}	object{data=nft.Holding}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/nfts/{contract}/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		TokenId string `param:"tokenId" validate:"required,numeric"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := nft.Id{Contract: domain.Address(c.Param("contract")).ToLower(), TokenId: domain.TokenId(p.TokenId)}
	res, err := h.nft.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// approve
//
//	@Summary		Approve a spender
//	@Description	Approve spender to transfer one token of the caller
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.approve.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Failure		500
//	@Router			/nfts/approve [post]
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Contract string `json:"contract" validate:"required,eth_address"`
		TokenId  string `json:"tokenId" validate:"required,numeric"`
		Spender  string `json:"spender" validate:"required,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := nft.Id{Contract: domain.Address(p.Contract).ToLower(), TokenId: domain.TokenId(p.TokenId)}
	if err := h.nft.Approve(ctx, caller, id, domain.Address(p.Spender).ToLower()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// setApprovalForAll
//
//	@Summary		Approve an operator
//	@Description	Grant or revoke operator rights over all tokens of the caller in contract
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.setApprovalForAll.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/nfts/approvalForAll [post]
func (h *handler) setApprovalForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Contract string `json:"contract" validate:"required,eth_address"`
		Operator string `json:"operator" validate:"required,eth_address"`
		Approved bool   `json:"approved"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	contract := domain.Address(p.Contract).ToLower()
	if err := h.nft.SetApprovalForAll(ctx, caller, contract, domain.Address(p.Operator).ToLower(), p.Approved); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// mint
//
//	@Summary		Mint a token
//	@Description	Seed the custody ledger with a token
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.mint.params	true	"params"
//	@Success		201
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Failure		500
//	@Router			/nfts/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract string `json:"contract" validate:"required,eth_address"`
		TokenId  string `json:"tokenId" validate:"required,numeric"`
		To       string `json:"to" validate:"required,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := nft.Id{Contract: domain.Address(p.Contract).ToLower(), TokenId: domain.TokenId(p.TokenId)}
	if err := h.nft.Mint(ctx, domain.Address(p.To).ToLower(), id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}
