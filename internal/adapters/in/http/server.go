package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/application/usecases/queries"
	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/domain/services"
	"gasdelivery/internal/core/ports"
	"gasdelivery/internal/notifications"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	registerActorHandler     commands.RegisterActorCommandHandler
	updateProfileHandler     commands.UpdateProfileCommandHandler

	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getOrdersByOwnerHandler     queries.GetOrdersByOwnerQueryHandler
	getAssignedOrdersHandler    queries.GetAssignedOrdersQueryHandler
	getDeliveryPersonnelHandler queries.GetDeliveryPersonnelQueryHandler

	registry  *notifications.Registry
	authGuard services.AuthorizationGuard
	identity  ports.IdentityProvider
	catalog   product.Catalog
}

// NewServer creates an HTTP server over the given use cases.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	registerActorHandler commands.RegisterActorCommandHandler,
	updateProfileHandler commands.UpdateProfileCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
	getDeliveryPersonnelHandler queries.GetDeliveryPersonnelQueryHandler,
	registry *notifications.Registry,
	identity ports.IdentityProvider,
	catalog product.Catalog,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		assignOrderHandler:          assignOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		registerActorHandler:        registerActorHandler,
		updateProfileHandler:        updateProfileHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getOrdersByOwnerHandler:     getOrdersByOwnerHandler,
		getAssignedOrdersHandler:    getAssignedOrdersHandler,
		getDeliveryPersonnelHandler: getDeliveryPersonnelHandler,
		registry:                    registry,
		authGuard:                   services.NewAuthorizationGuard(),
		identity:                    identity,
		catalog:                     catalog,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)
	e.POST("/api/v1/register", s.Register)

	api := e.Group("/api/v1", AuthMiddleware(s.identity))
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/stream", s.StreamOrders)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.GET("/personnel", s.ListDeliveryPersonnel)
	api.GET("/profile", s.GetProfile)
	api.PUT("/profile", s.UpdateProfile)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/register - creates an actor profile for a
// user the identity provider has authenticated for the first time. Sign-up
// always yields a customer; staff roles are granted out of band.
func (s *Server) Register(ctx echo.Context) error {
	var req struct {
		FullName    string `json:"full_name"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRegisterActorCommand(kernel.NewUUID(), actor.RoleCustomer, req.FullName, req.PhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.registerActorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, profileResponseFromActor(registered))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	kind, err := product.KindFromString(req.ProductKind)
	if err != nil {
		return respondError(ctx, err)
	}

	var location *kernel.Location
	if req.Latitude != nil && req.Longitude != nil {
		loc, locErr := kernel.NewLocation(*req.Latitude, *req.Longitude, req.Address)
		if locErr != nil {
			return respondError(ctx, locErr)
		}
		location = &loc
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), caller, kind, req.Quantity, location)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, s.orderResponse(created))
}

// ListOrders handles GET /api/v1/orders. The listing is scoped by the
// caller's role: admins see everything, customers their own orders, delivery
// personnel their assignments.
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var rows []queries.OrderResponse
	switch caller.Role() {
	case actor.RoleAdmin:
		if err = s.authGuard.Authorize(caller, nil, services.ActionListAllOrders); err == nil {
			rows, err = s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
		}
	case actor.RoleCustomer:
		var query queries.GetOrdersByOwnerQuery
		if err = s.authGuard.Authorize(caller, nil, services.ActionListOwnOrders); err == nil {
			if query, err = queries.NewGetOrdersByOwnerQuery(caller.ID()); err == nil {
				rows, err = s.getOrdersByOwnerHandler.Handle(ctx.Request().Context(), query)
			}
		}
	case actor.RoleDelivery:
		var query queries.GetAssignedOrdersQuery
		if err = s.authGuard.Authorize(caller, nil, services.ActionListAssignedOrders); err == nil {
			if query, err = queries.NewGetAssignedOrdersQuery(caller.ID()); err == nil {
				rows, err = s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
			}
		}
	}
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(rows))
	for i, row := range rows {
		response[i] = orderResponseFromQuery(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, caller, target)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.orderResponse(updated))
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	deliveryPersonID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, caller, deliveryPersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.orderResponse(assigned))
}

// ListDeliveryPersonnel handles GET /api/v1/personnel - the pool an admin
// assigns from.
func (s *Server) ListDeliveryPersonnel(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.authGuard.Authorize(caller, nil, services.ActionListAllOrders); err != nil {
		return respondError(ctx, err)
	}

	personnel, err := s.getDeliveryPersonnelHandler.Handle(
		ctx.Request().Context(), queries.NewGetDeliveryPersonnelQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeliveryPersonResponse, len(personnel))
	for i, person := range personnel {
		response[i] = DeliveryPersonResponse{
			ID:          person.ID.String(),
			FullName:    person.FullName,
			PhoneNumber: person.PhoneNumber,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profileResponseFromActor(caller))
}

// UpdateProfile handles PUT /api/v1/profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	caller, err := currentActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateProfileCommand(caller, req.FullName, req.PhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profileResponseFromActor(updated))
}

func (s *Server) orderResponse(aggregate *order.Order) OrderResponse {
	event, err := order.NewEvent(order.EventKindUpdated, aggregate, s.catalog)
	if err != nil {
		// The aggregate came straight from a handler; a snapshot failure
		// here means a catalog misconfiguration.
		return OrderResponse{ID: aggregate.ID().String(), Status: aggregate.Status().String()}
	}
	return orderResponseFromEvent(event)
}
