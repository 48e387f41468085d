package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/pricefeed"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

const priceCacheTtl = 10 * time.Second

type handler struct {
	oracle pricefeed.UseCase
}

// PriceResp is a quote with its display value
type PriceResp struct {
	Mantissa  string    `json:"mantissa"`
	Decimals  uint8     `json:"decimals"`
	Price     string    `json:"price"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OracleResp struct {
	*pricefeed.Oracle
	Feeds []*pricefeed.Feed `json:"feeds"`
}

func New(e *echo.Echo, oracle pricefeed.UseCase, authMw *authMiddleware.AuthMiddleware, httpCache *middleware.HttpCache) {
	h := &handler{oracle}

	delivery.RegisterErrorStatus(http.StatusNotFound, pricefeed.ErrNoPriceFeed, pricefeed.ErrNotBootstrapped)
	delivery.RegisterErrorStatus(http.StatusBadRequest, pricefeed.ErrInvalidFeed, pricefeed.ErrOverflow)
	delivery.RegisterErrorStatus(http.StatusForbidden, pricefeed.ErrNotOwner)
	delivery.RegisterErrorStatus(http.StatusServiceUnavailable, pricefeed.ErrStalePrice, pricefeed.ErrInvalidPrice)

	g := e.Group("/oracle")
	g.GET("", h.get)
	g.GET("/price/:token", h.getPrice, middleware.IsValidAddress("token"), httpCache.Cache(priceCacheTtl))
	g.GET("/usd", h.getUSDValue, httpCache.Cache(priceCacheTtl))
	g.POST("/feeds", h.setTokenPriceFeed, authMw.Auth())
	g.POST("/feeds/native", h.setNativePriceFeed, authMw.Auth())
}

// get
//
//	@Summary		Get oracle
//	@Description	Oracle owner, staleness window and registered feeds
//	@Tags			oracle
//	@Produce		json
//	@Success		200	{object}	object{data=http.OracleResp}
//	@Failure		404
//	@Failure		500
//	@Router			/oracle [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	o, err := h.oracle.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	feeds, err := h.oracle.GetFeeds(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, OracleResp{o, feeds})
}

// getPrice
//
//	@Summary		Get latest price
//	@Description	Latest quote of token, the zero address is the native currency
//	@Tags			oracle
//	@Produce		json
//	@Param			token	path		string	true	"token address"
//	@Success		200		{object}	object{data=http.PriceResp}
//	@Failure		400
//	@Failure		404
//	@Failure		503
//	@Router			/oracle/price/{token} [get]
func (h *handler) getPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, err := h.oracle.GetLatestPrice(ctx, domain.Address(c.Param("token")).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, PriceResp{
		Mantissa:  p.Mantissa.String(),
		Decimals:  p.Decimals,
		Price:     domain.NewAmount(p.Mantissa).Decimal(int32(p.Decimals)).String(),
		UpdatedAt: p.UpdatedAt,
	})
}

// getUSDValue
//
//	@Summary		Get USD value
//	@Description	USD value of amount with 18 decimals
//	@Tags			oracle
//	@Produce		json
//	@Param			token	query		string	false	"token address"
//	@Param			amount	query		string	true	"amount in the smallest unit"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Failure		404
//	@Failure		503
//	@Router			/oracle/usd [get]
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

	res, err := h.oracle.GetUSDValue(ctx, domain.Address(p.Token).ToLower(), domain.Amount(p.Amount))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// setTokenPriceFeed
//
//	@Summary		Set token price feed
//	@Description	Register or replace the feed of token, owner only
//	@Tags			oracle
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.setTokenPriceFeed.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/oracle/feeds [post]
func (h *handler) setTokenPriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Token string `json:"token" validate:"required,eth_address"`
		Feed  string `json:"feed" validate:"required,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.oracle.SetTokenPriceFeed(ctx, caller, domain.Address(p.Token).ToLower(), domain.Address(p.Feed).ToLower()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// setNativePriceFeed
//
//	@Summary		Set native price feed
//	@Description	Replace the native currency feed, owner only
//	@Tags			oracle
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.setNativePriceFeed.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		500
//	@Router			/oracle/feeds/native [post]
func (h *handler) setNativePriceFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Feed string `json:"feed" validate:"required,eth_address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.oracle.SetNativePriceFeed(ctx, caller, domain.Address(p.Feed).ToLower()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
