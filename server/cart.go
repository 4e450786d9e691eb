package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/quickbite/pkg/models"
	"github.com/example/quickbite/pkg/store"
)

func (s *Server) getCart(c *gin.Context) {
	state, err := s.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": state.Cart,
		"total": models.CartTotal(state.Cart),
		"open":  state.CartOpen,
	})
}

func (s *Server) addCartItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok, err := s.store.Product(req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	if err := s.store.Dispatch(store.AddToCart{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.getCart(c)
}

func (s *Server) updateCartItem(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.Dispatch(store.UpdateCartQuantity{ID: id, Quantity: req.Quantity}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.getCart(c)
}

func (s *Server) removeCartItem(c *gin.Context) {
	id := c.Param("id")

	if err := s.store.Dispatch(store.RemoveFromCart{ID: id}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.store.Dispatch(store.ClearCart{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// setCartVisibility toggles the cart panel flag. The flag lives in the store
// so that panel state survives navigation between views.
func (s *Server) setCartVisibility(c *gin.Context) {
	var req struct {
		Open *bool `json:"open" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.Dispatch(store.ToggleCart{Open: *req.Open}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"open": *req.Open})
}
