package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/checkout"
	"github.com/RekhaKadam/sonna-s-cafe/models"
	"github.com/RekhaKadam/sonna-s-cafe/session"
	"github.com/RekhaKadam/sonna-s-cafe/statemachine"
)

type SubmitDetailsRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	DeliveryMethod string `json:"delivery_method"`
	Address        string `json:"address"`
}

type SelectPaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

func checkoutState(sess *session.Session) gin.H {
	o := sess.Checkout
	state := gin.H{
		"stage":        o.Stage(),
		"details":      o.Details(),
		"subtotal":     o.Subtotal(),
		"delivery_fee": o.DeliveryFee(),
		"final_total":  o.FinalTotal(),
	}
	switch o.Stage() {
	case statemachine.StagePayment:
		state["tax"] = o.Tax()
	case statemachine.StageOtpVerification:
		// The mock surfaces the code instead of sending an SMS
		state["otp"] = o.GeneratedOTP()
	case statemachine.StageComplete:
		if order, ok := o.LastOrder(); ok {
			state["order"] = order
		}
	}
	return state
}

// checkoutError renders orchestrator failures: field-level validation
// maps next to their fields, guard failures inline, stage violations as
// unprocessable.
func checkoutError(c *gin.Context, err error) {
	var fields checkout.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrNoPaymentMethod),
		errors.Is(err, checkout.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}

// BeginCheckout opens the checkout from cart review
func (h *Handler) BeginCheckout(c *gin.Context) {
	sess := getSession(c)
	if err := sess.Checkout.Begin(); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutState(sess)})
}

// SubmitCheckoutDetails validates the customer form and moves to payment
func (h *Handler) SubmitCheckoutDetails(c *gin.Context) {
	var req SubmitDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := getSession(c)
	err := sess.Checkout.SubmitDetails(checkout.Details{
		Name:           req.Name,
		Phone:          req.Phone,
		DeliveryMethod: models.DeliveryMethod(req.DeliveryMethod),
		Address:        req.Address,
	})
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutState(sess)})
}

// SelectPayment records the payment method; verified sessions finalize
// immediately, others get an OTP challenge
func (h *Handler) SelectPayment(c *gin.Context) {
	var req SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := getSession(c)
	if err := sess.Checkout.SelectPayment(models.PaymentMethod(req.PaymentMethod)); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutState(sess)})
}

// VerifyCheckoutOTP finalizes the order on a matching code
func (h *Handler) VerifyCheckoutOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := getSession(c)
	if err := sess.Checkout.VerifyOTP(req.OTP); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order placed successfully",
		"checkout": checkoutState(sess),
	})
}

// CheckoutBack steps one stage backward, keeping entered fields
func (h *Handler) CheckoutBack(c *gin.Context) {
	sess := getSession(c)
	sess.Checkout.Back()
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutState(sess)})
}

// CloseCheckout cancels the flow and resets the session
func (h *Handler) CloseCheckout(c *gin.Context) {
	sess := getSession(c)
	sess.Checkout.Close()
	c.JSON(http.StatusOK, gin.H{"checkout": checkoutState(sess)})
}
