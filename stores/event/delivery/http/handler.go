package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
)

const maxLimit = 500

type handler struct {
	event event.UseCase
}

func New(e *echo.Echo, event event.UseCase) {
	h := &handler{event}

	e.GET("/events", h.getAll)
}

// getAll
//
//	@Summary		List events
//	@Description	Events in emission order, for off-system indexers
//	@Tags			events
//	@Produce		json
//	@Param			contract	query		string	false	"emitting contract"
//	@Param			name		query		string	false	"event name"
//	@Param			offset		query		int		false	"offset"
//	@Param			limit		query		int		false	"limit"
//	@Success		200			{object}	object{data=[]event.Event}
//	@Failure		400
//	@Failure		500
//	@Router			/events [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract string `query:"contract" validate:"omitempty,eth_address"`
		Name     string `query:"name"`
		Offset   int32  `query:"offset" validate:"gte=0"`
		Limit    int32  `query:"limit" validate:"gte=0"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.Limit == 0 || p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	opts := []event.FindAllOptionsFunc{event.WithPagination(p.Offset, p.Limit)}
	if p.Contract != "" {
		opts = append(opts, event.WithContract(domain.Address(p.Contract)))
	}
	if p.Name != "" {
		opts = append(opts, event.WithName(p.Name))
	}

	res, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("event.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
