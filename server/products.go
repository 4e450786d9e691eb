package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/models"
	"github.com/example/quickbite/pkg/notify"
	"github.com/example/quickbite/pkg/store"
)

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

func (r productRequest) validate() (string, bool) {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required", false
	}
	if !r.Price.IsPositive() {
		return "price must be greater than zero", false
	}
	return "", true
}

// listProducts serves the catalog view: optional free-text search over the
// product name plus a category filter.
func (s *Server) listProducts(c *gin.Context) {
	state, err := s.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	search := strings.ToLower(c.Query("q"))
	category := c.Query("category")

	filtered := make([]models.Product, 0, len(state.Products))
	for _, p := range state.Products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, gin.H{
		"products": filtered,
		"total":    len(filtered),
	})
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
	}

	if err := s.store.Dispatch(store.AddProduct{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name))
	s.notifier.Publish(notify.Notification{
		Title:    "Product created",
		Message:  product.Name,
		Severity: notify.SeveritySuccess,
	})

	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id := c.Param("id")

	var req productRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if _, ok, err := s.store.Product(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	product := models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
	}

	if err := s.store.Dispatch(store.UpdateProduct{Product: product}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// deleteProduct removes a catalog entry. Deleting an id that is already gone
// is a benign no-op, so the response is 204 either way.
func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := s.store.Dispatch(store.DeleteProduct{ID: id}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
