package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/cart"
	"github.com/RekhaKadam/sonna-s-cafe/catalog"
	"github.com/RekhaKadam/sonna-s-cafe/session"
)

type AddToCartRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type AddAddonRequest struct {
	AddonID string `json:"addon_id" binding:"required"`
}

func cartState(sess *session.Session) gin.H {
	return gin.H{
		"items":          sess.Cart.Snapshot(),
		"total_items":    sess.Cart.TotalItems(),
		"total_price":    sess.Cart.TotalPrice(),
		"loyalty_points": sess.Cart.TotalLoyaltyPoints(),
		"animating":      sess.Cart.IsAnimating(),
	}
}

// GetCart returns the session's cart
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": cartState(getSession(c))})
}

// AddToCart adds one unit of a menu item to the cart
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := catalog.FindItem(req.Name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found: " + req.Name})
		return
	}

	sess := getSession(c)
	sess.Cart.AddItem(cart.Candidate{
		Name:          item.Name,
		Price:         item.Price,
		ImageRef:      item.ImageRef,
		LoyaltyPoints: item.LoyaltyPoints,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": item.Name + " added to cart",
		"cart":    cartState(sess),
	})
}

// RemoveCartLine deletes a line; unknown ids are fine
func (h *Handler) RemoveCartLine(c *gin.Context) {
	sess := getSession(c)
	sess.Cart.RemoveLine(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"cart": cartState(sess)})
}

// SetCartQuantity sets a line's quantity; zero or less removes it
func (h *Handler) SetCartQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := getSession(c)
	sess.Cart.SetQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": cartState(sess)})
}

// AddCartAddon attaches a catalog addon to a line
func (h *Handler) AddCartAddon(c *gin.Context) {
	var req AddAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addon, ok := catalog.FindAddon(req.AddonID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Addon not found: " + req.AddonID})
		return
	}

	sess := getSession(c)
	sess.Cart.AddAddon(c.Param("id"), addon)
	c.JSON(http.StatusOK, gin.H{"cart": cartState(sess)})
}

// RemoveCartAddon detaches an addon from a line
func (h *Handler) RemoveCartAddon(c *gin.Context) {
	sess := getSession(c)
	sess.Cart.RemoveAddon(c.Param("id"), c.Param("addonId"))
	c.JSON(http.StatusOK, gin.H{"cart": cartState(sess)})
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	sess := getSession(c)
	sess.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"cart": cartState(sess)})
}
