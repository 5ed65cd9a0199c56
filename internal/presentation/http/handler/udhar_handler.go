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

// UdharHandler handles shop credit ledger HTTP requests
type UdharHandler struct {
	udharService *service.UdharService
}

// NewUdharHandler creates a new udhar handler
func NewUdharHandler(udharService *service.UdharService) *UdharHandler {
	return &UdharHandler{udharService: udharService}
}

// Create opens a manual credit ledger
// @Summary Create udhar
// @Tags udhar
// @Accept json
// @Produce json
// @Param request body request.CreateUdharRequest true "Ledger entry"
// @Success 201 {object} response.APIResponse
// @Router /udhar [post]
func (h *UdharHandler) Create(c *gin.Context) {
	var req request.CreateUdharRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	udhar, err := h.udharService.CreateUdhar(c.Request.Context(), &service.CreateUdharInput{
		CustomerID: req.CustomerID,
		Total:      req.Total,
		Paid:       req.Paid,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Udhar created successfully", udhar)
}

// List handles listing ledgers
// @Summary List udhar ledgers
// @Tags udhar
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /udhar [get]
func (h *UdharHandler) List(c *gin.Context) {
	var filter request.UdharFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.UdharFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		CustomerID: parseUUIDParam(filter.CustomerID),
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	}

	if filter.Status != "" {
		if status, ok := parseUdharStatus(filter.Status); ok {
			params.Status = &status
		}
	}

	result, err := h.udharService.ListUdhars(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Udhar ledgers retrieved successfully", result)
}

// Get handles getting a ledger with its payment history
// @Summary Get udhar
// @Tags udhar
// @Produce json
// @Param id path string true "Udhar ID"
// @Success 200 {object} response.APIResponse
// @Router /udhar/{id} [get]
func (h *UdharHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid udhar ID")
		return
	}

	udhar, err := h.udharService.GetUdhar(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Udhar retrieved successfully", udhar)
}

// RecordPayment applies a repayment to a ledger
// @Summary Record udhar payment
// @Tags udhar
// @Accept json
// @Produce json
// @Param id path string true "Udhar ID"
// @Param request body request.RecordUdharPaymentRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Router /udhar/{id}/payments [post]
func (h *UdharHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid udhar ID")
		return
	}

	var req request.RecordUdharPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, ok := parsePaymentMethod(req.Method)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	udhar, err := h.udharService.RecordPayment(c.Request.Context(), id, &service.RecordPaymentInput{
		Amount: req.Amount,
		Method: method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", udhar)
}

// SendReminders emails overdue ledger holders. Admin only.
// @Summary Send overdue reminders
// @Tags udhar
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /udhar/reminders [post]
func (h *UdharHandler) SendReminders(c *gin.Context) {
	sent, err := h.udharService.SendOverdueReminders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminders sent", gin.H{"sent": sent})
}
