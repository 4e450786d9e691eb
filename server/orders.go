package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/checkout"
	"github.com/example/quickbite/pkg/models"
	"github.com/example/quickbite/pkg/store"
)

func (s *Server) placeOrder(c *gin.Context) {
	var req checkout.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.checkout.Place(c.Request.Context(), req)
	if err != nil {
		var missing *checkout.MissingFieldError
		switch {
		case errors.Is(err, checkout.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, checkout.ErrEmptyCart), errors.As(err, &missing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// listOrders serves the admin order queue.
func (s *Server) listOrders(c *gin.Context) {
	state, err := s.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": state.Orders,
		"total":  len(state.Orders),
	})
}

// getOrder serves the tracking view: the order plus the current estimate.
func (s *Server) getOrder(c *gin.Context) {
	order, ok, err := s.store.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	eta, err := s.store.ETA()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       order,
		"eta_minutes": eta,
	})
}

func (s *Server) getOrderETA(c *gin.Context) {
	id := c.Param("id")
	if _, ok, err := s.store.Order(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	eta, err := s.store.ETA()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":    id,
		"eta_minutes": eta,
	})
}

// streamOrderETA pushes a fresh estimate over SSE on every refresh interval
// for as long as the tracking client stays connected. The recomputation stops
// the moment the request context is cancelled, so no timer outlives its
// consumer.
func (s *Server) streamOrderETA(c *gin.Context) {
	id := c.Param("id")
	if _, ok, err := s.store.Order(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	interval := s.config.ETA.RefreshInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx := c.Request.Context()

	eta, err := s.store.ETA()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.SSEvent("eta", gin.H{"order_id": id, "eta_minutes": eta})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			eta, err := s.store.ETA()
			if err != nil {
				return false
			}
			c.SSEvent("eta", gin.H{"order_id": id, "eta_minutes": eta})
			return true
		}
	})
}

// updateOrderStatus moves an order to any known status. The lifecycle is not
// enforced as forward-only: the admin queue may move an order backward.
func (s *Server) updateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok, lookupErr := s.store.Order(id); lookupErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": lookupErr.Error()})
		return
	} else if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	if err := s.store.Dispatch(store.UpdateOrderStatus{ID: id, Status: status}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order, _, err := s.store.Order(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", string(status)))

	c.JSON(http.StatusOK, order)
}
