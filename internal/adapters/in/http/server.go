// Package http exposes the order lifecycle and storage views over a REST
// API. It coordinates between HTTP handlers and application use cases;
// request and response DTOs stay local to this package.
package http

import (
	"errors"
	"net/http"

	"laundromat/internal/core/application/usecases/commands"
	"laundromat/internal/core/application/usecases/queries"
	"laundromat/internal/core/domain/model/kernel"
	"laundromat/internal/core/domain/model/order"
	"laundromat/internal/core/domain/services"
	"laundromat/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errTicketNumberImmutable rejects PATCH bodies carrying a ticketNumber.
// The pickup number is fixed at creation, allocated or ticket-stamped, and
// every appended version keeps it so the customer's claim slip stays valid.
var errTicketNumberImmutable = errors.New(
	"ticketNumber cannot be changed: the pickup number is assigned at creation and kept across versions",
)

// Server handles HTTP requests for the order lifecycle and storage views.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderByIDHandler           queries.GetOrderByIDQueryHandler
	getOrderByPickupNumberHandler queries.GetOrderByPickupNumberQueryHandler
	getAllOrdersHandler           queries.GetAllOrdersQueryHandler
	getOrdersByCustomerHandler    queries.GetOrdersByCustomerQueryHandler
	getStorageOccupancyHandler    queries.GetStorageOccupancyQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderByPickupNumberHandler queries.GetOrderByPickupNumberQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getStorageOccupancyHandler queries.GetStorageOccupancyQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		updateOrderHandler:            updateOrderHandler,
		deleteOrderHandler:            deleteOrderHandler,
		getOrderByIDHandler:           getOrderByIDHandler,
		getOrderByPickupNumberHandler: getOrderByPickupNumberHandler,
		getAllOrdersHandler:           getAllOrdersHandler,
		getOrdersByCustomerHandler:    getOrdersByCustomerHandler,
		getStorageOccupancyHandler:    getStorageOccupancyHandler,
	}
}

// RegisterRoutes wires the API routes onto the Echo instance. Mutating order
// routes require a bearer token signed with jwtSecret; reads are open.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.GET("/orders/pickup/:number", s.GetOrderByPickupNumber)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)
	api.GET("/storages", s.GetStorages)

	protected := api.Group("", JWTAuth(jwtSecret))
	protected.POST("/orders", s.CreateOrder)
	protected.PATCH("/orders/:id", s.UpdateOrder)
	protected.DELETE("/orders/:id", s.DeleteOrder)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order, prices
// it, and allocates a pickup slot unless a legacy ticket number is supplied.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, ok := actingUser(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := parseOrderType(request.OrderType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	paymentMethod, err := parsePaymentMethod(request.PaymentMethod)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	paymentStatus, err := parsePaymentStatus(request.PaymentStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		orderType,
		customerID,
		paymentMethod,
		paymentStatus,
		request.AmountPaid,
		request.PressingQuantity,
		toCleaningLines(request.CleaningItems),
		request.TicketNumber,
		userID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// UpdateOrder handles PATCH /api/v1/orders/:id - appends a new version to
// the order chain carrying the requested field changes.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	userID, ok := actingUser(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	patch, err := toOrderPatch(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, kernel.NewUUID(), userID, patch)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes a single version
// row with best-effort storage release.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderByID handles GET /api/v1/orders/:id - resolves the chain's main
// version with items and edit history.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetOrderByPickupNumber handles GET /api/v1/orders/pickup/:number - the
// front-desk lookup when a customer collects an order.
func (s *Server) GetOrderByPickupNumber(ctx echo.Context) error {
	var number int
	if err := echo.PathParamsBinder(ctx).Int("number", &number).BindError(); err != nil {
		return badRequest(ctx, "Invalid pickup number")
	}

	query, err := queries.NewGetOrderByPickupNumberQuery(number, includeDelivered(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getOrderByPickupNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// GetOrders handles GET /api/v1/orders - lists main versions, excluding
// delivered orders unless includeDelivered=true.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery(includeDelivered(ctx))

	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = toOrderResponse(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders - lists one
// customer's orders, optionally filtered by status and order type.
// Delivered orders are hidden unless includeDelivered=true or the status
// filter asks for them.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	filters := queries.OrderFilters{IncludeDelivered: includeDelivered(ctx)}
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := parseStatus(raw)
		if parseErr != nil {
			return badRequest(ctx, parseErr.Error())
		}
		filters.Status = &status
	}
	if raw := ctx.QueryParam("orderType"); raw != "" {
		orderType, parseErr := parseOrderType(raw)
		if parseErr != nil {
			return badRequest(ctx, parseErr.Error())
		}
		filters.OrderType = &orderType
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID, filters)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	views, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = toOrderResponse(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStorages handles GET /api/v1/storages - the rack occupancy report.
func (s *Server) GetStorages(ctx echo.Context) error {
	views, err := s.getStorageOccupancyHandler.Handle(
		ctx.Request().Context(), queries.NewGetStorageOccupancyQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStorageOccupancyResponse(views))
}

// respondWithOrder fetches the full order view anchored at id and writes it
// with the given status code.
func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(code, toOrderResponse(view))
}

func toOrderPatch(request UpdateOrderRequest) (commands.OrderPatch, error) {
	var patch commands.OrderPatch

	if request.OrderType != nil {
		orderType, err := parseOrderType(*request.OrderType)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.OrderType = &orderType
	}
	if request.CustomerID != nil {
		customerID, err := kernel.UUIDFromString(*request.CustomerID)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.CustomerID = &customerID
	}
	if request.Status != nil {
		status, err := parseStatus(*request.Status)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.Status = &status
	}
	if request.PaymentMethod != nil {
		method, err := parsePaymentMethod(*request.PaymentMethod)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.PaymentMethod = &method
	}
	if request.PaymentStatus != nil {
		status, err := parsePaymentStatus(*request.PaymentStatus)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.PaymentStatus = &status
	}
	if request.TicketNumber != nil {
		return commands.OrderPatch{}, errTicketNumberImmutable
	}
	patch.AmountPaid = request.AmountPaid

	return patch, nil
}

func includeDelivered(ctx echo.Context) bool {
	return ctx.QueryParam("includeDelivered") == "true"
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrTypeChangeNotAllowed):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrNoCapacityAvailable):
		code = http.StatusConflict
	case errors.Is(err, services.ErrNoNumberAvailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
