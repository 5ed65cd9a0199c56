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

// DealHandler handles deal bundle HTTP requests
type DealHandler struct {
	dealService *service.DealService
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// List handles listing deals
// @Summary List deals
// @Tags deals
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	var filter request.DealFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.DealFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		ActiveOnly: filter.ActiveOnly,
	}

	result, err := h.dealService.ListDeals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deals retrieved successfully", result)
}

// ListStorefront lists only active deals, the public storefront view.
func (h *DealHandler) ListStorefront(c *gin.Context) {
	var filter request.DealFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.DealFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		ActiveOnly: true,
	}

	result, err := h.dealService.ListDeals(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deals retrieved successfully", result)
}

// Create handles creating a deal. Admin only.
// @Summary Create deal
// @Tags deals
// @Accept json
// @Produce json
// @Param request body request.CreateDealRequest true "Deal"
// @Success 201 {object} response.APIResponse
// @Router /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var req request.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.DealItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.DealItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), &service.CreateDealInput{
		Name:        req.Name,
		Description: req.Description,
		DealPrice:   req.DealPrice,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deal created successfully", deal)
}

// Get handles getting a single deal with its constituents
// @Summary Get deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.APIResponse
// @Router /deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID")
		return
	}

	deal, err := h.dealService.GetDeal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deal retrieved successfully", deal)
}

// Expand flattens a deal into prorated cart lines, the shape the
// register and web cart consume.
// @Summary Expand deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.APIResponse
// @Router /deals/{id}/expand [get]
func (h *DealHandler) Expand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID")
		return
	}

	lines, err := h.dealService.ExpandToCart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deal expanded successfully", lines)
}

// Update handles updating a deal. Admin only.
// @Summary Update deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body request.UpdateDealRequest true "Deal"
// @Success 200 {object} response.APIResponse
// @Router /deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID")
		return
	}

	var req request.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateDealInput{
		Name:        req.Name,
		Description: req.Description,
		DealPrice:   req.DealPrice,
		Active:      req.Active,
	}
	if req.Items != nil {
		input.Items = make([]service.DealItemInput, len(req.Items))
		for i, item := range req.Items {
			input.Items[i] = service.DealItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
		}
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deal updated successfully", deal)
}

// Delete handles deleting a deal. Admin only.
// @Summary Delete deal
// @Tags deals
// @Param id path string true "Deal ID"
// @Success 204
// @Router /deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid deal ID")
		return
	}

	if err := h.dealService.DeleteDeal(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
