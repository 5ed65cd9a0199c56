package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/application/service"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/dto/request"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/presentation/http/dto/response"
)

// SettingsHandler handles bill settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the bill settings singleton
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update applies a partial settings update. Admin only.
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body request.UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateSettingsInput{
		StoreName:         req.StoreName,
		StoreAddress:      req.StoreAddress,
		StorePhone:        req.StorePhone,
		StoreEmail:        req.StoreEmail,
		LogoURL:           req.LogoURL,
		ShowLogo:          req.ShowLogo,
		ShowAddress:       req.ShowAddress,
		ShowPhone:         req.ShowPhone,
		ShowReturnPolicy:  req.ShowReturnPolicy,
		ShowBarcode:       req.ShowBarcode,
		HeaderText:        req.HeaderText,
		FooterText:        req.FooterText,
		ReturnPolicyText:  req.ReturnPolicyText,
		TaxEnabled:        req.TaxEnabled,
		TaxName:           req.TaxName,
		TaxRate:           req.TaxRate,
		TaxInclusive:      req.TaxInclusive,
		ShowTaxBreakdown:  req.ShowTaxBreakdown,
		TaxRegistrationNo: req.TaxRegistrationNo,
	}

	if req.PaperWidth != nil {
		width, ok := parsePaperWidth(*req.PaperWidth)
		if !ok {
			response.BadRequest(c, "Invalid paper width")
			return
		}
		input.PaperWidth = &width
	}
	if req.FontSize != nil {
		size, ok := parseFontSize(*req.FontSize)
		if !ok {
			response.BadRequest(c, "Invalid font size")
			return
		}
		input.FontSize = &size
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
