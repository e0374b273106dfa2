package http

import (
	"condopay-srv/internal/apartment"
	"condopay-srv/internal/model"
	"condopay-srv/pkg/response"
	"condopay-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func scopeFromContext(c *gin.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, false
	}
	return model.Scope{
		Role:        payload.Role,
		Email:       payload.Email,
		ApartmentID: payload.ApartmentID,
	}, true
}

// List returns every apartment with its current billing state.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	apts, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.List: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newApartmentListResp(apts))
}

func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Detail: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newApartmentResp(out.Apartment))
}

// DetailMine returns the authenticated resident's own apartment.
func (h *Handler) DetailMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.DetailMine(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.DetailMine: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newApartmentResp(out.Apartment))
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createApartmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.apartment.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, apartment.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.Created(c, newApartmentResp(out.Apartment))
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateApartmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.apartment.delivery.http.Update.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, apartment.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Update: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newApartmentResp(out.Apartment))
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, nil)
}

// Pay settles the charge of the apartment in the path.
func (h *Handler) Pay(c *gin.Context) {
	h.pay(c, c.Param("id"))
}

// PayMine settles the authenticated resident's own charge.
func (h *Handler) PayMine(c *gin.Context) {
	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	h.pay(c, sc.ApartmentID)
}

func (h *Handler) pay(c *gin.Context, id string) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	// Body is optional; an empty body settles the full bill amount.
	var req payReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.apartment.delivery.http.Pay.ShouldBindJSON: %v", err)
			response.ErrorWithMap(c, apartment.ErrInvalidAmount, errorMapping)
			return
		}
	}

	out, err := h.uc.Pay(ctx, sc, apartment.PayInput{
		ID:     id,
		Amount: req.Amount,
		Note:   req.Note,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Pay: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newApartmentResp(out.Apartment))
}

// Notify pushes a manual due notice to the resident's open streams.
func (h *Handler) Notify(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req notifyReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Warnf(ctx, "internal.apartment.delivery.http.Notify.ShouldBindJSON: %v", err)
			response.ErrorWithMap(c, apartment.ErrFieldRequired, errorMapping)
			return
		}
	}

	out, err := h.uc.Notify(ctx, sc, apartment.NotifyInput{
		ID:      c.Param("id"),
		Message: req.Message,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Notify: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, notifyResp{LastNotified: out.LastNotified})
}

func (h *Handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	payments, err := h.uc.History(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.History: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newPaymentListResp(payments))
}

// Dashboard returns the aggregate billing counters.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.apartment.delivery.http.Dashboard: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, dashboardResp{
		Total:   out.Total,
		Paid:    out.Paid,
		Unpaid:  out.Unpaid,
		Overdue: out.Overdue,
	})
}
