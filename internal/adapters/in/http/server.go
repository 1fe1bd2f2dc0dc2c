// Package http exposes the marketplace over a REST API. Every endpoint
// requires a session token; the resolved actor's identity flows into the
// use cases, which own the actual authorization rules. The HTTP layer
// only gates endpoints by role and translates core errors to statuses.
package http

import (
	"errors"
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identity ports.IdentityProvider

	// Command handlers
	addToCartHandler            commands.AddToCartCommandHandler
	updateCartLineHandler       commands.UpdateCartLineCommandHandler
	checkoutHandler             commands.CheckoutCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	assignAgentHandler          commands.AssignAgentCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	recordHeartbeatHandler      commands.RecordHeartbeatCommandHandler
	setAvailabilityHandler      commands.SetAgentAvailabilityCommandHandler

	// Query handlers
	getCartHandler            queries.GetCartQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getOrderTrackingHandler   queries.GetOrderTrackingQueryHandler
	getAvailableAgentsHandler queries.GetAvailableAgentsQueryHandler
	getDeliveryHistoryHandler queries.GetAgentDeliveryHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	identity ports.IdentityProvider,
	addToCartHandler commands.AddToCartCommandHandler,
	updateCartLineHandler commands.UpdateCartLineCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordHeartbeatHandler commands.RecordHeartbeatCommandHandler,
	setAvailabilityHandler commands.SetAgentAvailabilityCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getAvailableAgentsHandler queries.GetAvailableAgentsQueryHandler,
	getDeliveryHistoryHandler queries.GetAgentDeliveryHistoryQueryHandler,
) *Server {
	return &Server{
		identity:                    identity,
		addToCartHandler:            addToCartHandler,
		updateCartLineHandler:       updateCartLineHandler,
		checkoutHandler:             checkoutHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignAgentHandler:          assignAgentHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		recordHeartbeatHandler:      recordHeartbeatHandler,
		setAvailabilityHandler:      setAvailabilityHandler,
		getCartHandler:              getCartHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getOrderTrackingHandler:     getOrderTrackingHandler,
		getAvailableAgentsHandler:   getAvailableAgentsHandler,
		getDeliveryHistoryHandler:   getDeliveryHistoryHandler,
	}
}

// RegisterRoutes wires the API onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()
	e.Use(middleware.Recover())

	api := e.Group("/api/v1", SessionAuth(s.identity))

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.PATCH("/cart/items/:lineID", s.UpdateCartLine)
	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.GET("/orders/:orderID/tracking", s.GetOrderTracking)
	api.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/agent", s.AssignAgent)
	api.PATCH("/orders/:orderID/delivery", s.UpdateDeliveryStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/agents/heartbeat", s.RecordHeartbeat)
	api.PUT("/agents/availability", s.SetAvailability)
	api.GET("/agents/available", s.GetAvailableAgents)
	api.GET("/agents/deliveries", s.GetDeliveryHistory)
}

// GetCart handles GET /api/v1/cart - returns the customer's cart grouped
// by seller.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(actor.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartView(response))
}

// AddToCart handles POST /api/v1/cart/items - adds an item to the cart or
// merges quantities when the item is already there.
func (s *Server) AddToCart(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return err
	}

	var request AddToCartRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	foodItemID, err := kernel.UUIDFromString(request.FoodItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddToCartCommand(actor.UserID(), foodItemID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartLine handles PATCH /api/v1/cart/items/:lineID - sets a line's
// quantity; zero removes the line.
func (s *Server) UpdateCartLine(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return err
	}

	lineID, err := kernel.UUIDFromString(ctx.Param("lineID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateCartLineRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCartLineCommand(actor.UserID(), lineID, *request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the cart into per-seller
// orders. Partial success is a success: failed seller groups are listed in
// the body and their lines stay in the cart.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleCustomer)
	if err != nil {
		return err
	}

	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(actor.UserID(),
		request.DeliveryAddress, request.PaymentMethod, request.SpecialInstructions)
	if err != nil {
		if errors.Is(err, commands.ErrDeliveryAddressIsRequired) ||
			errors.Is(err, commands.ErrPaymentMethodIsRequired) {
			return respondBadRequest(ctx, err.Error())
		}
		return respondError(ctx, err)
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrCartIsEmpty) {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		}
		return respondError(ctx, err)
	}

	if len(result.Created) == 0 && (len(result.Failures) > 0 || len(result.MissingItems) > 0) {
		return ctx.JSON(http.StatusConflict, toCheckoutResponse(result))
	}
	return ctx.JSON(http.StatusCreated, toCheckoutResponse(result))
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders scoped
// by role, optionally filtered with ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(actor.UserID(), actor.Role(), statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetOrder handles GET /api/v1/orders/:orderID - one order with its item
// snapshot, visible only to the order's participants.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(response))
}

// GetOrderTracking handles GET /api/v1/orders/:orderID/tracking - the full
// status timeline, visible only to the order's participants.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	sort := queries.SortAscending
	if raw := ctx.QueryParam("sort"); raw != "" {
		sort = queries.SortOrder(raw)
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID, actor.UserID(), sort)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderTracking(response))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status - the
// seller advances preparation one step at a time.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleSeller)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor.UserID(), orderID, next, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/orders/:orderID/agent - the seller
// hands the order to a delivery agent. The order move and the agent's
// availability flip commit together.
func (s *Server) AssignAgent(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleSeller)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request AssignAgentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	agentID, err := kernel.UUIDFromString(request.AgentID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(actor.UserID(), orderID, agentID, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/orders/:orderID/delivery -
// the assigned agent advances the delivery leg, optionally geotagging the
// event.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleDelivery)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateDeliveryStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var location *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if geoErr != nil {
			return respondError(ctx, geoErr)
		}
		location = &point
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(actor.UserID(), orderID, next, request.Notes, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - the seller or
// the assigned agent cancels a non-terminal order. A busy agent tied to
// the order is released in the same transaction.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(actor.UserID(), orderID, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordHeartbeat handles POST /api/v1/agents/heartbeat - refreshes the
// calling agent's last-active time; first heartbeat registers the agent.
func (s *Server) RecordHeartbeat(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleDelivery)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordHeartbeatCommand(actor.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordHeartbeatHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAvailability handles PUT /api/v1/agents/availability - the agent goes
// on or off shift explicitly.
func (s *Server) SetAvailability(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleDelivery)
	if err != nil {
		return err
	}

	var request SetAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewSetAgentAvailabilityCommand(actor.UserID(), *request.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableAgents handles GET /api/v1/agents/available - the pool a
// seller can assign from, most recently active first.
func (s *Server) GetAvailableAgents(ctx echo.Context) error {
	if _, err := requireRole(ctx, kernel.RoleSeller); err != nil {
		return err
	}

	agents, err := s.getAvailableAgentsHandler.Handle(ctx.Request().Context(),
		queries.NewGetAvailableAgentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAvailableAgents(agents))
}

// GetDeliveryHistory handles GET /api/v1/agents/deliveries - the calling
// agent's completed deliveries, newest first.
func (s *Server) GetDeliveryHistory(ctx echo.Context) error {
	actor, err := requireRole(ctx, kernel.RoleDelivery)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAgentDeliveryHistoryQuery(actor.UserID())
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.getDeliveryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(history))
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
