package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/application/service"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/repository"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/dto/request"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/dto/response"
	"github.com/doctorplanet-med/doctor-planet-sub001/pkg/pagination"
)

// OrderHandler handles web order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles web checkout. This is a public endpoint; shoppers
// don't hold accounts.
// @Summary Place order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body request.CreateOrderRequest true "Order"
// @Success 201 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerID:   req.CustomerID,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		ShipAddress:  req.ShipAddress,
		Items:        items,
		DealIDs:      req.DealIDs,
		ShippingFee:  req.ShippingFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", order)
}

// Track looks an order up by its public order number
// @Summary Track order
// @Tags orders
// @Produce json
// @Param orderNo path string true "Order number"
// @Success 200 {object} response.APIResponse
// @Router /orders/track/{orderNo} [get]
func (h *OrderHandler) Track(c *gin.Context) {
	orderNo := c.Param("orderNo")
	if orderNo == "" {
		response.BadRequest(c, "Order number is required")
		return
	}

	order, err := h.orderService.TrackOrder(c.Request.Context(), orderNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders (page-based, or cursor-based when a
// cursor or limit parameter is present)
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	if c.Query("cursor") != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		CustomerID: parseUUIDParam(filter.CustomerID),
		StartDate:  parseDate(filter.DateFrom),
		EndDate:    parseDate(filter.DateTo),
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	}

	if filter.Status != "" {
		if status, ok := parseOrderStatus(filter.Status); ok {
			params.Status = &status
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

func (h *OrderHandler) listWithCursor(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	limit := 15
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	direction := c.DefaultQuery("direction", "next")

	params := &repository.OrderCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    filter.Cursor,
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		Search:     filter.Search,
		CustomerID: parseUUIDParam(filter.CustomerID),
		StartDate:  parseDate(filter.DateFrom),
		EndDate:    parseDate(filter.DateTo),
	}

	if filter.Status != "" {
		if status, ok := parseOrderStatus(filter.Status); ok {
			params.Status = &status
		}
	}

	result, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus advances an order through its lifecycle
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := parseOrderStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid order status")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}
