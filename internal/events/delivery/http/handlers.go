package http

import (
	"condopay-srv/internal/events"
	"condopay-srv/pkg/response"
	"condopay-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Subscribe opens a Server-Sent-Events stream for the caller.
//
// Admin tokens may subscribe as "admin"; resident tokens are pinned to their
// own resident stream regardless of the query parameters. The handler blocks
// for the lifetime of the connection and releases the registration on every
// termination path (client disconnect, write error, server shutdown).
func (h *Handler) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	role := events.Role(c.DefaultQuery("role", payload.Role))
	identifier := c.Query("identifier")

	switch payload.Role {
	case scope.RoleResident:
		// Residents only ever see their own stream.
		role = events.RoleResident
		identifier = payload.Email
	case scope.RoleAdmin:
		if role == events.RoleResident && identifier == "" {
			response.ErrorWithMap(c, events.ErrMissingIdentifier, subscribeErrorMapping)
			return
		}
	default:
		response.Forbidden(c)
		return
	}

	// Long-lived streaming response: no caching, no proxy buffering.
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	sub, err := h.uc.Subscribe(ctx, events.SubscribeInput{
		Role:       role,
		Identifier: identifier,
		Writer:     c.Writer,
	})
	if err != nil {
		h.l.Warnf(ctx, "internal.events.delivery.http.Subscribe: %v", err)
		response.ErrorWithMap(c, err, subscribeErrorMapping)
		return
	}
	defer sub.Close()

	// The client reconnects on its own after any close; the server never
	// retries a stream.
	select {
	case <-ctx.Done():
	case <-sub.Done():
	}
}
