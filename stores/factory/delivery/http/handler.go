package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/factory"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

const listCacheTtl = 5 * time.Second

type handler struct {
	factory factory.UseCase
}

func New(e *echo.Echo, factoryUC factory.UseCase, authMw *authMiddleware.AuthMiddleware, httpCache *middleware.HttpCache) {
	h := &handler{factoryUC}

	delivery.RegisterErrorStatus(http.StatusBadRequest,
		factory.ErrInsufficientCreationFee,
		factory.ErrInvalidAddress,
		factory.ErrFeeTooHigh,
	)
	delivery.RegisterErrorStatus(http.StatusForbidden, factory.ErrNotOwner)
	delivery.RegisterErrorStatus(http.StatusConflict,
		factory.ErrAuctionExists,
		factory.ErrCreationInProgress,
		factory.ErrAlreadyInitialized,
		factory.ErrNotInitialized,
		factory.ErrNothingToWithdraw,
	)

	g := e.Group("/factory")
	g.GET("", h.get)
	g.POST("/initialize", h.initialize, authMw.Auth())

	g.GET("/auctions", h.getAuctions, httpCache.Cache(listCacheTtl))
	g.POST("/auctions", h.createAuction, authMw.Auth())
	g.GET("/auctions/count", h.count)
	g.GET("/auctions/:address", h.getAuctionInfo, middleware.IsValidAddress("address"))
	g.GET("/assets/:contract/:tokenId", h.getAsset, middleware.IsValidAddress("contract"))
	g.GET("/users/:address/auctions", h.getUserAuctions, middleware.IsValidAddress("address"))

	g.PUT("/implementation", h.updateImplementation, authMw.Auth())
	g.PUT("/priceFeed", h.updatePriceFeed, authMw.Auth())
	g.PUT("/platformFee", h.updatePlatformFee, authMw.Auth())
	g.PUT("/creationFee", h.updateCreationFee, authMw.Auth())
	g.PUT("/feeCollector", h.updateFeeCollector, authMw.Auth())
	g.POST("/emergencyWithdraw", h.emergencyWithdraw, authMw.Auth())
}

// get
//
//	@Summary	Get factory
//	@Tags		factory
//	@Produce	json
//	@Success	200	{object}	object{data=factory.Config}
//	@Failure	409
//	@Router		/factory [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	cfg, err := h.factory.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cfg)
}

// initialize
//
//	@Summary		Initialize factory
//	@Description	One time setup by the deployer
//	@Tags			factory
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		factory.InitParams	true	"params"
//	@Success		200		{object}	object{data=factory.Config}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/factory/initialize [post]
func (h *handler) initialize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Implementation string `json:"implementation" validate:"required,eth_address"`
		PriceFeed      string `json:"priceFeed" validate:"required,eth_address"`
		FeeCollector   string `json:"feeCollector" validate:"required,eth_address"`
		Owner          string `json:"owner" validate:"required,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	cfg, err := h.factory.Initialize(ctx, caller, factory.InitParams{
		Implementation: domain.Address(p.Implementation).ToLower(),
		PriceFeed:      domain.Address(p.PriceFeed).ToLower(),
		FeeCollector:   domain.Address(p.FeeCollector).ToLower(),
		Owner:          domain.Address(p.Owner).ToLower(),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cfg)
}

// getAuctions
//
//	@Summary		List auctions
//	@Description	Engine addresses in creation order. Without a limit every auction is returned.
//	@Tags			factory
//	@Produce		json
//	@Param			offset	query		int	false	"offset"
//	@Param			limit	query		int	false	"limit"
//	@Success		200		{object}	object{data=[]string}
//	@Failure		400
//	@Router			/factory/auctions [get]
func (h *handler) getAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int  `query:"offset" validate:"min=0"`
		Limit  *int `query:"limit" validate:"omitempty,min=0"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var (
		res []domain.Address
		err error
	)
	if p.Limit == nil {
		res, err = h.factory.GetAllAuctions(ctx)
	} else {
		res, err = h.factory.GetAuctionsByPage(ctx, p.Offset, *p.Limit)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// createAuction
//
//	@Summary		Create auction through the factory
//	@Description	Spawns a dedicated engine for the asset. Value must cover the creation fee, the excess is returned. Duration is in seconds.
//	@Tags			factory
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.createAuction.params	true	"params"
//	@Success		200		{object}	object{data=factory.Listing}
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Router			/factory/auctions [post]
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
		Value         string `json:"value" validate:"omitempty,uint256"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.factory.CreateAuction(ctx, caller, domain.Amount(p.Value), auction.CreateParams{
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
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// count
//
//	@Summary	Count auctions
//	@Tags		factory
//	@Produce	json
//	@Success	200	{object}	object{data=int}
//	@Router		/factory/auctions/count [get]
func (h *handler) count(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	n, err := h.factory.AllAuctionsLength(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, n)
}

// getAuctionInfo
//
//	@Summary	Get auction info
//	@Tags		factory
//	@Produce	json
//	@Param		address	path		string	true	"engine address"
//	@Success	200		{object}	object{data=factory.AuctionInfo}
//	@Failure	404
//	@Router		/factory/auctions/{address} [get]
func (h *handler) getAuctionInfo(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	info, err := h.factory.GetAuctionInfo(ctx, domain.Address(c.Param("address")).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// getAsset
//
//	@Summary	Look up an asset
//	@Tags		factory
//	@Produce	json
//	@Param		contract	path		string	true	"nft contract"
//	@Param		tokenId		path		string	true	"token id"
//	@Success	200			{object}	object{data=object{auction=string,exists=bool}}
//	@Failure	400
//	@Router		/factory/assets/{contract}/{tokenId} [get]
func (h *handler) getAsset(c echo.Context) error {
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

	contract := domain.Address(c.Param("contract")).ToLower()
	tokenId := domain.TokenId(p.TokenId)
	exists, err := h.factory.AuctionExists(ctx, contract, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	addr, err := h.factory.GetAuctionAddress(ctx, contract, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type resp struct {
		Auction domain.Address `json:"auction"`
		Exists  bool           `json:"exists"`
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resp{Auction: addr, Exists: exists})
}

// getUserAuctions
//
//	@Summary	List a creator's auctions
//	@Tags		factory
//	@Produce	json
//	@Param		address	path		string	true	"creator address"
//	@Success	200		{object}	object{data=[]string}
//	@Router		/factory/users/{address}/auctions [get]
func (h *handler) getUserAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.factory.GetUserAuctions(ctx, domain.Address(c.Param("address")).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type addressParams struct {
	Address string `json:"address" validate:"required,eth_address"`
}

// bindAddress reads the single address body shared by the admin setters
func bindAddress(c echo.Context) (domain.Address, error) {
	p := &addressParams{}
	if err := c.Bind(p); err != nil {
		return "", domain.ErrBadParamInput
	}
	if err := c.Validate(p); err != nil {
		return "", err
	}
	return domain.Address(p.Address).ToLower(), nil
}

// updateImplementation
//
//	@Summary	Update engine implementation
//	@Tags		factory
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		params	body	http.addressParams	true	"params"
//	@Success	200
//	@Failure	400
//	@Failure	403
//	@Router		/factory/implementation [put]
func (h *handler) updateImplementation(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	addr, err := bindAddress(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.factory.UpdateImplementation(ctx, caller, addr); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// updatePriceFeed
//
//	@Summary	Update price oracle
//	@Tags		factory
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		params	body	http.addressParams	true	"params"
//	@Success	200
//	@Failure	400
//	@Failure	403
//	@Router		/factory/priceFeed [put]
func (h *handler) updatePriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	addr, err := bindAddress(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.factory.UpdatePriceFeed(ctx, caller, addr); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// updateFeeCollector
//
//	@Summary	Update fee collector
//	@Tags		factory
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		params	body	http.addressParams	true	"params"
//	@Success	200
//	@Failure	400
//	@Failure	403
//	@Router		/factory/feeCollector [put]
func (h *handler) updateFeeCollector(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	addr, err := bindAddress(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.factory.UpdateFeeCollector(ctx, caller, addr); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// updatePlatformFee
//
//	@Summary		Update platform fee
//	@Description	Basis points copied into engines created afterwards
//	@Tags			factory
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.updatePlatformFee.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Router			/factory/platformFee [put]
func (h *handler) updatePlatformFee(c echo.Context) error {
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

	if err := h.factory.UpdatePlatformFee(ctx, caller, *p.Fee); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// updateCreationFee
//
//	@Summary	Update creation fee
//	@Tags		factory
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		params	body	http.updateCreationFee.params	true	"params"
//	@Success	200
//	@Failure	400
//	@Failure	403
//	@Router		/factory/creationFee [put]
func (h *handler) updateCreationFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Fee string `json:"fee" validate:"required,uint256"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.factory.UpdateCreationFee(ctx, caller, domain.Amount(p.Fee)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// emergencyWithdraw
//
//	@Summary		Emergency withdraw
//	@Description	Sweep the factory's native balance to the owner
//	@Tags			factory
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=string}
//	@Failure		403
//	@Failure		409
//	@Router			/factory/emergencyWithdraw [post]
func (h *handler) emergencyWithdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	amount, err := h.factory.EmergencyWithdraw(ctx, caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}
