package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the authenticated user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == entity.RoleAdmin
}

func parsePaymentMethod(s string) (enum.PaymentMethod, bool) {
	switch s {
	case "cash":
		return enum.PaymentMethodCash, true
	case "card":
		return enum.PaymentMethodCard, true
	case "udhar":
		return enum.PaymentMethodUdhar, true
	}
	return 0, false
}

func parseOrderStatus(s string) (enum.OrderStatus, bool) {
	switch s {
	case "pending":
		return enum.OrderStatusPending, true
	case "confirmed":
		return enum.OrderStatusConfirmed, true
	case "shipped":
		return enum.OrderStatusShipped, true
	case "delivered":
		return enum.OrderStatusDelivered, true
	case "cancelled":
		return enum.OrderStatusCancelled, true
	}
	return 0, false
}

func parseUdharStatus(s string) (enum.UdharStatus, bool) {
	switch s {
	case "unpaid":
		return enum.UdharStatusUnpaid, true
	case "partial":
		return enum.UdharStatusPartial, true
	case "paid":
		return enum.UdharStatusPaid, true
	case "overdue":
		return enum.UdharStatusOverdue, true
	}
	return 0, false
}

func parsePaperWidth(s string) (enum.PaperWidth, bool) {
	switch s {
	case "58mm":
		return enum.PaperWidth58mm, true
	case "80mm":
		return enum.PaperWidth80mm, true
	case "A4":
		return enum.PaperWidthA4, true
	}
	return 0, false
}

func parseFontSize(s string) (enum.FontSize, bool) {
	switch s {
	case "small":
		return enum.FontSizeSmall, true
	case "normal":
		return enum.FontSizeNormal, true
	case "large":
		return enum.FontSizeLarge, true
	}
	return 0, false
}

// parseDate parses a yyyy-mm-dd query parameter
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// parseUUIDParam parses an optional UUID query parameter
func parseUUIDParam(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
