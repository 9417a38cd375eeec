// Package http wires the intake use cases to their REST endpoints.
// Public routes cover order placement and reads; admin routes sit behind an
// API key and expose the listing and status management surface.
package http

import (
	"net/http"
	"strconv"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/observability"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getActiveZonesHandler    queries.GetActiveZonesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getActiveZonesHandler queries.GetActiveZonesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getOrdersHandler:         getOrdersHandler,
		getActiveZonesHandler:    getActiveZonesHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. createLimiter throttles order
// placement and may be nil; adminAuth guards the admin group.
func (s *Server) RegisterRoutes(e *echo.Echo, adminAuth echo.MiddlewareFunc, createLimiter echo.MiddlewareFunc) {
	v1 := e.Group("/api/v1")

	if createLimiter != nil {
		v1.POST("/orders", s.CreateOrder, createLimiter)
	} else {
		v1.POST("/orders", s.CreateOrder)
	}
	v1.GET("/orders/:id", s.GetOrder)
	v1.GET("/customers/:customerId/orders", s.GetCustomerOrders)
	v1.GET("/zones", s.GetZones)

	admin := v1.Group("/admin", adminAuth)
	admin.GET("/orders", s.GetOrders)
	admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		observability.ObserveOrderRejected(observability.ReasonValidation)
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "invalid request body",
		})
	}

	cmd, err := commandFromRequest(req)
	if err != nil {
		observability.ObserveOrderRejected(rejectionReason(err))
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		observability.ObserveOrderRejected(rejectionReason(err))
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	observability.ObserveOrderCreated(created.DeliveryType().String())
	return ctx.JSON(http.StatusCreated, queries.OrderResponseFromDomain(created))
}

// commandFromRequest converts the request payload into a validated command.
func commandFromRequest(req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	deliveryType, err := order.DeliveryTypeFromString(req.DeliveryType)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	var address *order.Address
	if req.Address != nil {
		addr := order.NewAddress(
			req.Address.Street,
			req.Address.Floor,
			req.Address.City,
			req.Address.Province,
			req.Address.PostalCode,
			req.Address.Reference,
		)
		address = &addr
	}

	var point *kernel.GeoPoint
	if req.Lat != nil && req.Lng != nil {
		pt, ptErr := kernel.NewGeoPoint(*req.Lat, *req.Lng)
		if ptErr != nil {
			return commands.CreateOrderCommand{}, ptErr
		}
		point = &pt
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return commands.NewCreateOrderCommand(
		req.FullName,
		req.Email,
		req.Phone,
		deliveryType,
		address,
		point,
		req.Comments,
		paymentMethod,
		items,
	)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "order id must be a positive integer",
		})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := strconv.ParseInt(ctx.Param("customerId"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "customer id must be a positive integer",
		})
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	resp, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetZones handles GET /api/v1/zones - lists active delivery zones.
func (s *Server) GetZones(ctx echo.Context) error {
	resp, err := s.getActiveZonesHandler.Handle(ctx.Request().Context(), queries.NewGetActiveZonesQuery())
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOrders handles GET /api/v1/admin/orders - the paged admin listing.
// Accepts optional status, page and limit query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			status, body := mapError(err)
			return ctx.JSON(status, body)
		}
		statusFilter = &parsed
	}

	page, err := queryInt(ctx, "page")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "page must be a non-negative integer",
		})
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "limit must be a non-negative integer",
		})
	}

	query, err := queries.NewGetOrdersQuery(statusFilter, page, limit)
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	resp, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status, body := mapError(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "order id must be a positive integer",
		})
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidation,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		code, body := mapError(err)
		return ctx.JSON(code, body)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		code, body := mapError(err)
		return ctx.JSON(code, body)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		code, body := mapError(err)
		return ctx.JSON(code, body)
	}

	return ctx.JSON(http.StatusOK, queries.OrderResponseFromDomain(updated))
}

func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
