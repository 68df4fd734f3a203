package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ogradyo/restaurant-simulator/internal/adapters/out/external"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/messaging"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/processing"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/kernel"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/menu"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/message"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/order"
	"github.com/ogradyo/restaurant-simulator/internal/pkg/errs"
)

// Server exposes the simulator over HTTP. It coordinates between echo
// handlers and the processing and messaging services.
type Server struct {
	processor *processing.Processor
	catalog   *menu.Catalog
	generator *messaging.Generator
	router    *messaging.Router
	platforms *external.Manager
}

func NewServer(
	processor *processing.Processor,
	catalog *menu.Catalog,
	generator *messaging.Generator,
	router *messaging.Router,
	platforms *external.Manager,
) *Server {
	return &Server{
		processor: processor,
		catalog:   catalog,
		generator: generator,
		router:    router,
		platforms: platforms,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/customers", s.CreateCustomer)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/wait", s.GetWaitEstimate)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.DELETE("/orders/:id/items/:index", s.RemoveOrderItem)
	api.POST("/orders/:id/tip", s.AddTip)
	api.POST("/orders/:id/confirm", s.transition(s.processor.ConfirmOrder))
	api.POST("/orders/:id/prepare", s.transition(s.processor.StartPreparation))
	api.POST("/orders/:id/ready", s.transition(s.processor.CompleteOrder))
	api.POST("/orders/:id/finalize", s.transition(s.processor.FinalizeOrder))
	api.POST("/orders/:id/cancel", s.transition(s.processor.CancelOrder))
	api.POST("/orders/:id/messages", s.PublishOrderMessage)
	api.POST("/orders/:id/external", s.RegisterExternalOrder)

	api.GET("/menu", s.GetMenu)
	api.GET("/statistics", s.GetStatistics)
	api.GET("/routes/statistics", s.GetRouteStatistics)
	api.GET("/external/statistics", s.GetExternalStatistics)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondError(ctx echo.Context, err error) error {
	code := http.StatusBadRequest
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrItemsLocked):
		code = http.StatusConflict
	}
	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

type createCustomerRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LoyaltyMember bool   `json:"loyalty_member"`
}

func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req createCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	customer, err := s.processor.CreateCustomer(req.Name, req.Phone, req.Email, req.LoyaltyMember)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messaging.CustomerPayload{
		ID:            customer.ID().String(),
		Name:          customer.Name(),
		Phone:         customer.Phone(),
		Email:         customer.Email(),
		LoyaltyMember: customer.IsLoyaltyMember(),
	})
}

type orderItemRequest struct {
	MenuItemID          string            `json:"menu_item_id"`
	Quantity            int               `json:"quantity"`
	Customizations      map[string]string `json:"customizations"`
	SpecialInstructions string            `json:"special_instructions"`
}

type createOrderRequest struct {
	OrderType           string                `json:"order_type"`
	Customer            createCustomerRequest `json:"customer"`
	Items               []orderItemRequest    `json:"items"`
	SpecialInstructions string                `json:"special_instructions"`
}

type orderResponse struct {
	Order                messaging.OrderPayload `json:"order"`
	QueuePosition        int                    `json:"queue_position"`
	EstimatedWaitMinutes int                    `json:"estimated_wait_minutes"`
}

func (s *Server) newOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		Order:                messaging.NewOrderPayload(o),
		QueuePosition:        s.processor.QueuePosition(o.ID()),
		EstimatedWaitMinutes: s.processor.EstimatedWaitMinutes(o.ID()),
	}
}

func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return respondError(ctx, err)
	}
	customer, err := s.processor.CreateCustomer(
		req.Customer.Name, req.Customer.Phone, req.Customer.Email, req.Customer.LoyaltyMember)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		menuItem, err := s.catalog.Item(item.MenuItemID)
		if err != nil {
			return respondError(ctx, err)
		}
		line, err := order.NewItem(menuItem, item.Quantity, item.SpecialInstructions, item.Customizations)
		if err != nil {
			return respondError(ctx, err)
		}
		lines = append(lines, line)
	}

	o, err := s.processor.CreateOrder(orderType, customer, lines, req.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, s.newOrderResponse(o))
}

func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	o, err := s.processor.GetOrder(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.newOrderResponse(o))
}

func (s *Server) ListOrders(ctx echo.Context) error {
	var orders []*order.Order
	switch {
	case ctx.QueryParam("status") != "":
		status, err := order.StatusFromString(ctx.QueryParam("status"))
		if err != nil {
			return respondError(ctx, err)
		}
		orders = s.processor.OrdersByStatus(status)
	case ctx.QueryParam("type") != "":
		orderType, err := order.TypeFromString(ctx.QueryParam("type"))
		if err != nil {
			return respondError(ctx, err)
		}
		orders = s.processor.OrdersByType(orderType)
	default:
		for _, status := range order.Statuses() {
			orders = append(orders, s.processor.OrdersByStatus(status)...)
		}
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, s.newOrderResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

type waitResponse struct {
	QueuePosition        int `json:"queue_position"`
	EstimatedWaitMinutes int `json:"estimated_wait_minutes"`
}

func (s *Server) GetWaitEstimate(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	if _, err := s.processor.GetOrder(id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, waitResponse{
		QueuePosition:        s.processor.QueuePosition(id),
		EstimatedWaitMinutes: s.processor.EstimatedWaitMinutes(id),
	})
}

func (s *Server) AddOrderItem(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	var req orderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	if err := s.processor.AddItem(id, req.MenuItemID, req.Quantity,
		req.Customizations, req.SpecialInstructions); err != nil {
		return respondError(ctx, err)
	}

	o, err := s.processor.GetOrder(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.newOrderResponse(o))
}

func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	var index int
	if err := echo.PathParamsBinder(ctx).Int("index", &index).BindError(); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("index"))
	}

	if err := s.processor.RemoveItem(id, index); err != nil {
		return respondError(ctx, err)
	}

	o, err := s.processor.GetOrder(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.newOrderResponse(o))
}

type tipRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) AddTip(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	var req tipRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	if err := s.processor.AddTip(id, req.Amount); err != nil {
		return respondError(ctx, err)
	}

	o, err := s.processor.GetOrder(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.newOrderResponse(o))
}

// transition adapts one lifecycle operation into an echo handler.
func (s *Server) transition(op func(kernel.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := orderIDParam(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := op(id); err != nil {
			return respondError(ctx, err)
		}
		o, err := s.processor.GetOrder(id)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, s.newOrderResponse(o))
	}
}

type publishMessageResponse struct {
	Format          string   `json:"format"`
	ContentType     string   `json:"content_type"`
	Content         string   `json:"content"`
	DeliveredRoutes []string `json:"delivered_routes"`
}

// PublishOrderMessage renders the order in the requested format and routes
// it. In async routing mode delivered_routes is always empty.
func (s *Server) PublishOrderMessage(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	o, err := s.processor.GetOrder(id)
	if err != nil {
		return respondError(ctx, err)
	}

	format := message.JSON
	if raw := ctx.QueryParam("format"); raw != "" {
		format, err = message.FormatFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
	}
	includeMetadata := ctx.QueryParam("metadata") != "false"

	msg, err := s.generator.Generate(o, format, includeMetadata)
	if err != nil {
		return respondError(ctx, err)
	}
	delivered := s.router.Dispatch(msg)

	return ctx.JSON(http.StatusOK, publishMessageResponse{
		Format:          msg.Format.String(),
		ContentType:     msg.ContentType,
		Content:         msg.Content,
		DeliveredRoutes: delivered,
	})
}

type menuItemResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	BasePrice      float64  `json:"base_price"`
	Calories       int      `json:"calories"`
	Allergens      []string `json:"allergens,omitempty"`
	Available      bool     `json:"available"`
	PrepTimeMins   int      `json:"preparation_time"`
	Customizations []string `json:"customizations,omitempty"`
}

func (s *Server) GetMenu(ctx echo.Context) error {
	var items []menu.Item
	switch {
	case ctx.QueryParam("q") != "":
		items = s.catalog.Search(ctx.QueryParam("q"))
	case ctx.QueryParam("category") != "":
		category, err := menu.CategoryFromString(ctx.QueryParam("category"))
		if err != nil {
			return respondError(ctx, err)
		}
		items = s.catalog.ItemsByCategory(category)
	default:
		items = s.catalog.Items()
	}

	response := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponse{
			ID:             item.ID(),
			Name:           item.Name(),
			Description:    item.Description(),
			Category:       item.Category().String(),
			BasePrice:      item.BasePrice(),
			Calories:       item.Calories(),
			Allergens:      item.Allergens(),
			Available:      item.IsAvailable(),
			PrepTimeMins:   item.PreparationTime(),
			Customizations: item.Customizations(),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterExternalOrder registers a delivery order with its platform and
// returns the platform's confirmation.
func (s *Server) RegisterExternalOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	o, err := s.processor.GetOrder(id)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmation, err := s.platforms.CreateOrder(o)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, confirmation)
}

func (s *Server) GetExternalStatistics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.platforms.Statistics())
}

func (s *Server) GetStatistics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.processor.Statistics())
}

func (s *Server) GetRouteStatistics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.router.Statistics())
}
