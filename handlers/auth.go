package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/checkout"
	"github.com/RekhaKadam/sonna-s-cafe/middleware"
	"github.com/RekhaKadam/sonna-s-cafe/models"
	"github.com/RekhaKadam/sonna-s-cafe/otp"
)

type SendOTPRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type VerifyLoginRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// SendLoginOTP starts an OTP login. The generated code is surfaced in
// the response — this system has no SMS channel to send it through.
func (h *Handler) SendLoginOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your full name"})
		return
	}
	phone := checkout.NormalizePhone(req.Phone)
	if len(phone) != 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid 10-digit phone number"})
		return
	}

	code := h.otp.Generate()
	sess := getSession(c)
	sess.BeginLogin(strings.TrimSpace(req.Name), phone, code)

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent to " + phone,
		"otp":     code,
	})
}

// VerifyLoginOTP completes an OTP login and issues a token
func (h *Handler) VerifyLoginOTP(c *gin.Context) {
	var req VerifyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := getSession(c)
	name, phone, code := sess.PendingLogin()
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No OTP pending. Request one first"})
		return
	}
	if !otp.Verify(req.OTP, code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP. Please try again"})
		return
	}
	sess.FinishLogin()

	// First login creates an empty-history profile; later checkouts in
	// this session skip the OTP step.
	h.store.EnsureProfile(name, phone)
	sess.Checkout.SetIdentity(name, phone)

	token, err := middleware.GenerateToken(name, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    gin.H{"name": name, "phone": phone},
	})
}

// GetProfile returns the customer's profile; no record reads as no history
func (h *Handler) GetProfile(c *gin.Context) {
	profile, ok := h.store.Profile()
	if !ok {
		name, phone := middleware.GetCustomer(c)
		profile = models.UserProfile{Name: name, Phone: phone}
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetMyOrders returns the order history, newest first
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders := h.store.Orders()
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
