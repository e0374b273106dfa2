package http

import (
	"condopay-srv/internal/auth"
	"condopay-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

type adminLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type residentLoginReq struct {
	Email           string `json:"email" binding:"required"`
	ApartmentNumber string `json:"apartmentNumber" binding:"required"`
}

type loginResp struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	ApartmentID string `json:"apartmentId,omitempty"`
}

func newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:       out.Token,
		Role:        out.Role,
		Email:       out.Email,
		ApartmentID: out.ApartmentID,
	}
}

// AdminLogin exchanges the configured administrator credentials for a token.
func (h *Handler) AdminLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req adminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.AdminLogin.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, auth.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.AdminLogin(ctx, auth.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newLoginResp(out))
}

// ResidentLogin exchanges an email plus apartment number for a resident token.
func (h *Handler) ResidentLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req residentLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.ResidentLogin.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, auth.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.ResidentLogin(ctx, auth.ResidentLoginInput{
		Email:           req.Email,
		ApartmentNumber: req.ApartmentNumber,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newLoginResp(out))
}
