package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RekhaKadam/sonna-s-cafe/catalog"
)

// GetMenu returns the full menu, category by category
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Menu,
	})
}

// GetAddons returns the fixed addon catalog
func (h *Handler) GetAddons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"addons": catalog.Addons,
	})
}

// GetUpsell returns the dessert upsell strip
func (h *Handler) GetUpsell(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": catalog.Upsell,
	})
}
