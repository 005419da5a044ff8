// Package http exposes the ordering backend to collaborators over REST.
// It adapts HTTP requests into commands and queries and maps domain errors
// onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ordering/internal/core/application/resolver"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/payment"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionHandler      commands.TransitionOrderCommandHandler
	recordPaymentHandler   commands.RecordPaymentCommandHandler
	updateDetailsHandler   commands.UpdateOrderDetailsCommandHandler
	registerContactHandler commands.RegisterContactCommandHandler

	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler

	orderResolver resolver.Resolver
	cartStore     ports.CartStore
	logger        *zap.Logger
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	updateDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	registerContactHandler commands.RegisterContactCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	orderResolver resolver.Resolver,
	cartStore ports.CartStore,
	logger *zap.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionHandler:      transitionHandler,
		recordPaymentHandler:   recordPaymentHandler,
		updateDetailsHandler:   updateDetailsHandler,
		registerContactHandler: registerContactHandler,
		getUserOrdersHandler:   getUserOrdersHandler,
		listOrdersHandler:      listOrdersHandler,
		orderResolver:          orderResolver,
		cartStore:              cartStore,
		logger:                 logger,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:identifier", s.GetOrder)
	api.POST("/orders/:identifier/transitions", s.TransitionOrder)
	api.PATCH("/orders/:id", s.UpdateOrderDetails)
	api.GET("/users/:accountID/orders", s.GetUserOrders)
	api.POST("/users", s.RegisterContact)
	api.POST("/payments", s.RecordPayment)
	api.GET("/carts/:accountID", s.GetCart)
	api.PUT("/carts/:accountID", s.SaveCart)
	api.DELETE("/carts/:accountID", s.ClearCart)
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, order.ErrNotOrderOwner):
		status = http.StatusForbidden
	case errors.Is(err, cart.ErrEmptyCart):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrNoFieldsToUpdate),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrAccountIDIsInvalid),
		errors.Is(err, commands.ErrOrderIDIsInvalid),
		errors.Is(err, commands.ErrPhoneIsRequired),
		errors.Is(err, commands.ErrAddressIsRequired):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", zap.Error(err))
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

// orderResponse is the HTTP representation of an order aggregate.
type orderResponse struct {
	ID           int64           `json:"id"`
	Number       string          `json:"number"`
	AccountID    int64           `json:"account_id"`
	Status       string          `json:"status"`
	StatusLabel  string          `json:"status_label"`
	Amount       float64         `json:"amount"`
	DeliveryCost float64         `json:"delivery_cost"`
	Discount     float64         `json:"discount"`
	Items        cart.PricedCart `json:"items"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:           o.ID(),
		Number:       o.Number(),
		AccountID:    o.AccountID(),
		Status:       o.Status().String(),
		StatusLabel:  o.Status().Label(),
		Amount:       o.Amount(),
		DeliveryCost: o.DeliveryCost(),
		Discount:     o.Discount(),
		Items:        o.Items(),
		Phone:        o.Phone(),
		Address:      o.Address(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderRequest struct {
	AccountID int64          `json:"account_id"`
	Username  string         `json:"username"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Items     map[string]int `json:"items"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
}

type createOrderResponse struct {
	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	Amount      float64 `json:"amount"`
}

// CreateOrder handles POST /api/v1/orders. A request without items falls
// back to the customer's stored session cart, which is cleared after a
// successful checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	reqCtx := ctx.Request().Context()

	items := cart.Cart(req.Items)
	fromSession := false
	if items.IsEmpty() {
		stored, err := s.cartStore.Get(reqCtx, req.AccountID)
		if err != nil {
			return s.writeError(ctx, err)
		}
		items = stored
		fromSession = true
	}
	if items.IsEmpty() {
		return s.writeError(ctx, cart.ErrEmptyCart)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.AccountID,
		commands.CustomerProfile{
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
		items,
		req.Phone,
		req.Address,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(reqCtx, cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if fromSession {
		if err = s.cartStore.Clear(reqCtx, req.AccountID); err != nil {
			s.logger.Warn("failed to clear session cart after checkout",
				zap.Int64("account_id", req.AccountID),
				zap.Error(err))
		}
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Amount:      result.Amount,
	})
}

type transitionRequest struct {
	Action             string `json:"action"`
	RequesterAccountID int64  `json:"requester_account_id"`
}

// TransitionOrder handles POST /api/v1/orders/:identifier/transitions.
// The identifier may be an order number, a surrogate id or an account id;
// resolution happens before the transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	var req transitionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	action, err := order.ParseAction(req.Action)
	if err != nil {
		return s.writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	resolved, err := s.orderResolver.Resolve(reqCtx, ctx.Param("identifier"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(resolved.ID(), action, req.RequesterAccountID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.transitionHandler.Handle(reqCtx, cmd); err != nil {
		return s.writeError(ctx, err)
	}

	// Re-fetch by surrogate id. Re-resolving the original identifier could
	// pick up a different order when it was an account id and a newer order
	// landed in between.
	updated, err := s.orderResolver.Resolve(reqCtx, strconv.FormatInt(resolved.ID(), 10))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetOrder handles GET /api/v1/orders/:identifier.
func (s *Server) GetOrder(ctx echo.Context) error {
	resolved, err := s.orderResolver.Resolve(ctx.Request().Context(), ctx.Param("identifier"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resolved))
}

// ListOrders handles GET /api/v1/orders with limit/offset/status query params.
func (s *Server) ListOrders(ctx echo.Context) error {
	var params struct {
		Limit  int    `query:"limit"`
		Offset int    `query:"offset"`
		Status string `query:"status"`
	}
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid query parameters",
		})
	}

	var statusFilter *order.Status
	if params.Status != "" {
		parsed, err := order.StatusFromString(params.Status)
		if err != nil {
			return s.writeError(ctx, err)
		}
		statusFilter = &parsed
	}

	query, err := queries.NewListOrdersQuery(params.Limit, params.Offset, statusFilter)
	if err != nil {
		return s.writeError(ctx, err)
	}

	listing, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listing)
}

type updateOrderDetailsRequest struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateOrderDetails handles PATCH /api/v1/orders/:id for contact edits.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	var req updateOrderDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var orderID int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &orderID).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, ports.OrderPatch{
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateDetailsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetUserOrders handles GET /api/v1/users/:accountID/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	var accountID int64
	if err := echo.PathParamsBinder(ctx).Int64("accountID", &accountID).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid account id",
		})
	}

	var params struct {
		Limit int `query:"limit"`
	}
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid query parameters",
		})
	}

	query, err := queries.NewGetUserOrdersQuery(accountID, params.Limit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	history, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}

type registerContactRequest struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type registerContactResponse struct {
	UserID    int64  `json:"user_id"`
	AccountID int64  `json:"account_id"`
	FullName  string `json:"full_name"`
}

// RegisterContact handles POST /api/v1/users, upserting a customer identity.
func (s *Server) RegisterContact(ctx echo.Context) error {
	var req registerContactRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRegisterContactCommand(req.AccountID, commands.CustomerProfile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, req.Phone)
	if err != nil {
		return s.writeError(ctx, err)
	}

	customer, err := s.registerContactHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, registerContactResponse{
		UserID:    customer.ID(),
		AccountID: customer.AccountID(),
		FullName:  customer.FullName(),
	})
}

type recordPaymentRequest struct {
	OrderID   int64   `json:"order_id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
}

type recordPaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

// RecordPayment handles POST /api/v1/payments. A request without a payment
// id gets a generated one, standing in for a capture step that would
// normally supply it.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req recordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	if req.PaymentID == "" {
		req.PaymentID = uuid.NewString()
	}

	cmd, err := commands.NewRecordPaymentCommand(
		req.OrderID,
		req.PaymentID,
		req.Amount,
		req.Method,
		payment.Status(req.Status),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, recordPaymentResponse{
		PaymentID: cmd.PaymentID(),
		Status:    string(cmd.Status()),
	})
}

// GetCart handles GET /api/v1/carts/:accountID.
func (s *Server) GetCart(ctx echo.Context) error {
	var accountID int64
	if err := echo.PathParamsBinder(ctx).Int64("accountID", &accountID).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid account id",
		})
	}

	stored, err := s.cartStore.Get(ctx.Request().Context(), accountID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if stored == nil {
		stored = cart.Cart{}
	}

	return ctx.JSON(http.StatusOK, stored)
}

// SaveCart handles PUT /api/v1/carts/:accountID.
func (s *Server) SaveCart(ctx echo.Context) error {
	var accountID int64
	if err := echo.PathParamsBinder(ctx).Int64("accountID", &accountID).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid account id",
		})
	}

	var items map[string]int
	if err := ctx.Bind(&items); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	if err := s.cartStore.Save(ctx.Request().Context(), accountID, cart.Cart(items)); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/carts/:accountID.
func (s *Server) ClearCart(ctx echo.Context) error {
	var accountID int64
	if err := echo.PathParamsBinder(ctx).Int64("accountID", &accountID).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid account id",
		})
	}

	if err := s.cartStore.Clear(ctx.Request().Context(), accountID); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
