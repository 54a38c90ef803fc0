package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/notifications"
	"gasdelivery/internal/pkg/errs"
)

const heartbeatInterval = 15 * time.Second

// StreamOrders handles GET /api/v1/orders/stream - a server-sent events feed
// of order changes. Staff subscribe to everything with ?scope=all; customers
// are pinned to their own orders.
func (s *Server) StreamOrders(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var ownerID *kernel.UUID
	scope := notifications.ScopeAll()
	if ctx.QueryParam("scope") != "all" {
		id := caller.ID()
		ownerID = &id
		scope = notifications.ScopeOwned(id)
	}

	if err = s.authGuard.AuthorizeSubscription(caller, ownerID); err != nil {
		return respondError(ctx, err)
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	sub := s.registry.Subscribe(scope)
	defer s.registry.Unsubscribe(sub)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}
			payload, marshalErr := json.Marshal(orderResponseFromEvent(event))
			if marshalErr != nil {
				return errs.NewValueIsInvalidErrorWithCause("event", marshalErr)
			}
			if _, err = fmt.Fprintf(response, "id: %s\nevent: %s\ndata: %s\n\n",
				event.EventID, event.Kind, payload); err != nil {
				return nil
			}
			response.Flush()
		case <-heartbeat.C:
			// Comment lines keep idle connections open through proxies.
			if _, err = fmt.Fprint(response, ": heartbeat\n\n"); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}
