package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

const (
	usdCacheTtl       = 10 * time.Second
	defaultRetryLimit = 100
)

var states = map[string]auction.State{
	"active":   auction.StateActive,
	"ended":    auction.StateEnded,
	"canceled": auction.StateCanceled,
}

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auctionUC auction.UseCase, authMw *authMiddleware.AuthMiddleware, httpCache *middleware.HttpCache) {
	h := &handler{auctionUC}

	delivery.RegisterErrorStatus(http.StatusBadRequest,
		auction.ErrInvalidNftContract,
		auction.ErrInvalidStartingPrice,
		auction.ErrReserveBelowStarting,
		auction.ErrDurationTooShort,
		auction.ErrDurationTooLong,
		auction.ErrInvalidAmount,
		auction.ErrPaymentTokenMismatch,
		auction.ErrETHAmountMismatch,
		auction.ErrBelowStartingPrice,
		auction.ErrBidTooLow,
		auction.ErrFeeTooHigh,
		auction.ErrInvalidOwner,
	)
	delivery.RegisterErrorStatus(http.StatusForbidden,
		auction.ErrNotSeller,
		auction.ErrNotOwner,
		auction.ErrNotFactory,
		auction.ErrSellerCannotBid,
	)
	delivery.RegisterErrorStatus(http.StatusNotFound, auction.ErrEngineNotFound, auction.ErrAuctionNotFound)
	delivery.RegisterErrorStatus(http.StatusConflict,
		auction.ErrAlreadyInitialized,
		auction.ErrNotInitialized,
		auction.ErrAuctionEnded,
		auction.ErrAuctionNotEnded,
		auction.ErrAuctionAlreadyFinalized,
		auction.ErrNothingToWithdraw,
	)
	delivery.RegisterErrorStatus(http.StatusServiceUnavailable, auction.ErrOracleUnavailable)

	e.POST("/engines", h.deploy, authMw.Auth(), authMw.IsAdmin())
	e.POST("/pendingReturns/retry", h.retryPendingReturns, authMw.Auth(), authMw.IsAdmin())

	g := e.Group("/engines/:engine", middleware.IsValidAddress("engine"))
	g.GET("", h.getEngine)
	g.PUT("/fee", h.setPlatformFee, authMw.Auth())
	g.GET("/usd", h.getUSDValue, httpCache.Cache(usdCacheTtl))
	g.POST("/withdrawals", h.withdraw, authMw.Auth())
	g.GET("/pendingReturns/:beneficiary", h.getPendingReturn, middleware.IsValidAddress("beneficiary"))

	g.GET("/auctions", h.findAuctions)
	g.POST("/auctions", h.createAuction, authMw.Auth())
	g.GET("/auctions/:id", h.getAuction)
	g.POST("/auctions/:id/bids", h.placeBid, authMw.Auth())
	g.GET("/auctions/:id/bids/:bidder", h.getUserBid, middleware.IsValidAddress("bidder"))
	g.POST("/auctions/:id/end", h.endAuction, authMw.Auth())
	g.POST("/auctions/:id/cancel", h.cancelAuction, authMw.Auth())
}

func engineOf(c echo.Context) domain.Address {
	return domain.Address(c.Param("engine")).ToLower()
}

func auctionIdOf(c echo.Context) (auction.Id, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return auction.Id{}, domain.ErrBadParamInput
	}
	return auction.Id{Engine: engineOf(c), AuctionId: id}, nil
}

// deploy
//
//	@Summary		Deploy engine
//	@Description	Deploy and initialize an auction engine, admin only. The caller is the deployer.
//	@Tags			engines
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.deploy.params	true	"params"
//	@Success		200		{object}	object{data=auction.Engine}
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/engines [post]
func (h *handler) deploy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Implementation string `json:"implementation" validate:"required,eth_address"`
		Oracle         string `json:"oracle" validate:"required,eth_address"`
		Owner          string `json:"owner" validate:"omitempty,eth_address"`
		FeeCollector   string `json:"feeCollector" validate:"omitempty,eth_address"`
		PlatformFee    *int32 `json:"platformFee" validate:"omitempty,min=0,max=1000"`
		Factory        string `json:"factory" validate:"omitempty,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	owner := domain.Address(p.Owner).ToLower()
	if owner.IsEmpty() {
		owner = caller
	}

	e, err := h.auction.Deploy(ctx, domain.Address(p.Implementation).ToLower(), caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	e, err = h.auction.Initialize(ctx, e.Address, auction.InitParams{
		Oracle:       domain.Address(p.Oracle).ToLower(),
		Owner:        owner,
		FeeCollector: domain.Address(p.FeeCollector).ToLower(),
		PlatformFee:  p.PlatformFee,
		Factory:      domain.Address(p.Factory).ToLower(),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, e)
}

// getEngine
//
//	@Summary		Get engine
//	@Tags			engines
//	@Produce		json
//	@Param			engine	path		string	true	"engine address"
//	@Success		200		{object}	object{data=auction.Engine}
//	@Failure		404
//	@Router			/engines/{engine} [get]
func (h *handler) getEngine(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	e, err := h.auction.GetEngine(ctx, engineOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, e)
}

// setPlatformFee
//
//	@Summary		Set platform fee
//	@Description	Fee in basis points, engine owner only
//	@Tags			engines
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			engine	path	string					true	"engine address"
//	@Param			params	body	http.setPlatformFee.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Router			/engines/{engine}/fee [put]
func (h *handler) setPlatformFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Fee *int32 `json:"fee" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetPlatformFee(ctx, engineOf(c), caller, *p.Fee); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// getUSDValue
//
//	@Summary		Get USD value
//	@Description	USD value of amount with 18 decimals, from the engine's oracle
//	@Tags			engines
//	@Produce		json
//	@Param			engine	path		string	true	"engine address"
//	@Param			token	query		string	false	"token address"
//	@Param			amount	query		string	true	"amount in the smallest unit"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Failure		503
//	@Router			/engines/{engine}/usd [get]
func (h *handler) getUSDValue(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Token  string `query:"token" validate:"omitempty,eth_address"`
		Amount string `query:"amount" validate:"required,uint256"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.GetUSDValue(ctx, engineOf(c), domain.Address(p.Token).ToLower(), domain.Amount(p.Amount))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// withdraw
//
//	@Summary		Withdraw
//	@Description	Pull every pending return the engine owes the caller in token
//	@Tags			engines
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			engine	path		string				true	"engine address"
//	@Param			params	body		http.withdraw.params	true	"params"
//	@Success		200		{object}	object{data=string}
//	@Failure		409
//	@Router			/engines/{engine}/withdrawals [post]
func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Token string `json:"token" validate:"omitempty,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := h.auction.Withdraw(ctx, engineOf(c), caller, domain.Address(p.Token).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

// getPendingReturn
//
//	@Summary		Get pending return
//	@Tags			engines
//	@Produce		json
//	@Param			engine		path		string	true	"engine address"
//	@Param			beneficiary	path		string	true	"beneficiary address"
//	@Param			token		query		string	false	"token address"
//	@Success		200			{object}	object{data=string}
//	@Router			/engines/{engine}/pendingReturns/{beneficiary} [get]
func (h *handler) getPendingReturn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := domain.Address(c.QueryParam("token")).ToLower()
	if token.IsZero() {
		token = domain.NativeToken
	} else if !validator.IsValidAddress(string(token)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid token")
	}

	amount, err := h.auction.GetPendingReturn(ctx, auction.PendingReturnId{
		Engine:      engineOf(c),
		Token:       token,
		Beneficiary: domain.Address(c.Param("beneficiary")).ToLower(),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

// retryPendingReturns
//
//	@Summary		Retry pending returns
//	@Description	Push outstanding returns once more, admin only
//	@Tags			engines
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.retryPendingReturns.params	true	"params"
//	@Success		200		{object}	object{data=int}
//	@Router			/pendingReturns/retry [post]
func (h *handler) retryPendingReturns(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Limit int `json:"limit" validate:"min=0,max=1000"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = defaultRetryLimit
	}

	paid, err := h.auction.RetryPendingReturns(ctx, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, paid)
}

// findAuctions
//
//	@Summary		List auctions
//	@Tags			auctions
//	@Produce		json
//	@Param			engine	path		string	true	"engine address"
//	@Param			seller	query		string	false	"seller address"
//	@Param			state	query		string	false	"active, ended or canceled"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"limit"
//	@Success		200		{object}	object{data=[]auction.Auction}
//	@Failure		400
//	@Router			/engines/{engine}/auctions [get]
func (h *handler) findAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller string `query:"seller" validate:"omitempty,eth_address"`
		State  string `query:"state" validate:"omitempty,oneof=active ended canceled"`
		Offset int32  `query:"offset" validate:"min=0"`
		Limit  int32  `query:"limit" validate:"min=0,max=100"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithEngine(engineOf(c)),
		auction.WithPagination(p.Offset, p.Limit),
	}
	if len(p.Seller) > 0 {
		opts = append(opts, auction.WithSeller(domain.Address(p.Seller)))
	}
	if len(p.State) > 0 {
		opts = append(opts, auction.WithState(states[p.State]))
	}

	res, err := h.auction.FindAuctions(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// createAuction
//
//	@Summary		Create auction
//	@Description	Escrow the caller's NFT and open bidding. Duration is in seconds.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			engine	path		string					true	"engine address"
//	@Param			params	body		http.createAuction.params	true	"params"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/engines/{engine}/auctions [post]
func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		NftContract   string `json:"nftContract" validate:"required,eth_address"`
		TokenId       string `json:"tokenId" validate:"required,numeric"`
		StartingPrice string `json:"startingPrice" validate:"required,uint256"`
		ReservePrice  string `json:"reservePrice" validate:"required,uint256"`
		Duration      int64  `json:"duration" validate:"required,min=1"`
		PaymentToken  string `json:"paymentToken" validate:"omitempty,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.auction.CreateAuction(ctx, engineOf(c), caller, auction.CreateParams{
		NftContract:   domain.Address(p.NftContract).ToLower(),
		TokenId:       domain.TokenId(p.TokenId),
		StartingPrice: domain.Amount(p.StartingPrice),
		ReservePrice:  domain.Amount(p.ReservePrice),
		Duration:      time.Duration(p.Duration) * time.Second,
		PaymentToken:  domain.Address(p.PaymentToken).ToLower(),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

// getAuction
//
//	@Summary		Get auction
//	@Tags			auctions
//	@Produce		json
//	@Param			engine	path		string	true	"engine address"
//	@Param			id		path		int		true	"auction id"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		404
//	@Router			/engines/{engine}/auctions/{id} [get]
func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionIdOf(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	a, err := h.auction.GetAuction(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

// placeBid
//
//	@Summary		Place bid
//	@Description	value is the native currency sent along and has to equal amount on native auctions
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			engine	path		string				true	"engine address"
//	@Param			id		path		int					true	"auction id"
//	@Param			params	body		http.placeBid.params	true	"params"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/engines/{engine}/auctions/{id}/bids [post]
func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Amount       string `json:"amount" validate:"required,uint256"`
		PaymentToken string `json:"paymentToken" validate:"omitempty,eth_address"`
		Value        string `json:"value" validate:"omitempty,uint256"`
	}

	id, err := auctionIdOf(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.auction.PlaceBid(ctx, id, caller, domain.Amount(p.Amount), domain.Address(p.PaymentToken).ToLower(), domain.Amount(p.Value))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

// getUserBid
//
//	@Summary		Get user bid
//	@Tags			auctions
//	@Produce		json
//	@Param			engine	path		string	true	"engine address"
//	@Param			id		path		int		true	"auction id"
//	@Param			bidder	path		string	true	"bidder address"
//	@Success		200		{object}	object{data=string}
//	@Router			/engines/{engine}/auctions/{id}/bids/{bidder} [get]
func (h *handler) getUserBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionIdOf(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	amount, err := h.auction.GetUserBid(ctx, id, domain.Address(c.Param("bidder")).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

// endAuction
//
//	@Summary		End auction
//	@Description	Settle an expired auction, anyone may call
//	@Tags			auctions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			engine	path		string	true	"engine address"
//	@Param			id		path		int		true	"auction id"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		409
//	@Router			/engines/{engine}/auctions/{id}/end [post]
func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := auctionIdOf(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	a, err := h.auction.EndAuction(ctx, id, caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

// cancelAuction
//
//	@Summary		Cancel auction
//	@Description	Seller only, while bidding is open
//	@Tags			auctions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			engine	path		string	true	"engine address"
//	@Param			id		path		int		true	"auction id"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		403
//	@Failure		409
//	@Router			/engines/{engine}/auctions/{id}/cancel [post]
func (h *handler) cancelAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := auctionIdOf(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	a, err := h.auction.CancelAuction(ctx, id, caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}
