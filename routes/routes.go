package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/handlers"
	"github.com/RekhaKadam/sonna-s-cafe/middleware"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Menu & catalog (no session needed)
		public.GET("/menu", h.GetMenu)
		public.GET("/menu/addons", h.GetAddons)
		public.GET("/menu/upsell", h.GetUpsell)

		// Checkout flow info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Session-scoped routes ──────────────────────────────────────
	sess := r.Group("/api")
	sess.Use(h.WithSession())
	{
		// Cart
		sess.GET("/cart", h.GetCart)
		sess.POST("/cart/items", h.AddToCart)
		sess.DELETE("/cart/items/:id", h.RemoveCartLine)
		sess.PUT("/cart/items/:id/quantity", h.SetCartQuantity)
		sess.POST("/cart/items/:id/addons", h.AddCartAddon)
		sess.DELETE("/cart/items/:id/addons/:addonId", h.RemoveCartAddon)
		sess.DELETE("/cart", h.ClearCart)

		// Checkout
		sess.POST("/checkout", h.BeginCheckout)
		sess.POST("/checkout/details", h.SubmitCheckoutDetails)
		sess.POST("/checkout/payment", h.SelectPayment)
		sess.POST("/checkout/verify", h.VerifyCheckoutOTP)
		sess.POST("/checkout/back", h.CheckoutBack)
		sess.DELETE("/checkout", h.CloseCheckout)

		// OTP login
		sess.POST("/auth/otp", h.SendLoginOTP)
		sess.POST("/auth/verify", h.VerifyLoginOTP)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", h.GetProfile)
		auth.GET("/orders", h.GetMyOrders)
	}
}
