package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffeesaf/internal/cart"
	"coffeesaf/internal/domain"
)

type cartItemRequest struct {
	CoffeeID int64  `json:"coffeeId" binding:"required"`
	Size     string `json:"size"`
}

type cartResponse struct {
	Lines  []domain.CartLine `json:"lines"`
	Counts map[string]int    `json:"counts"`
	Total  int               `json:"total"`
}

func cartSnapshot(store *cart.Store) cartResponse {
	lines := store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	counts := make(map[string]int)
	for _, l := range lines {
		counts[strconv.FormatInt(l.Item.ID, 10)]++
	}
	return cartResponse{Lines: lines, Counts: counts, Total: store.Total()}
}

func getCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartSnapshot(store))
	}
}

// lineFromRequest resolves the referenced catalog item and snapshots it at
// the requested size, so the cart line carries its own chosen price.
func lineFromRequest(c *gin.Context, svc catalogService, req cartItemRequest) (domain.CartLine, bool) {
	item, err := svc.GetByID(c.Request.Context(), req.CoffeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "coffee not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		}
		return domain.CartLine{}, false
	}
	return domain.NewCartLine(*item, domain.Size(req.Size)), true
}

func addCartItemHandler(store *cart.Store, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coffeeId required"})
			return
		}
		line, ok := lineFromRequest(c, svc, req)
		if !ok {
			return
		}
		store.Add(line)
		c.JSON(http.StatusOK, cartSnapshot(store))
	}
}

func removeCartItemHandler(store *cart.Store, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coffeeId required"})
			return
		}
		line, ok := lineFromRequest(c, svc, req)
		if !ok {
			return
		}
		// Removing a line that is not in the cart is a no-op.
		store.Remove(line)
		c.JSON(http.StatusOK, cartSnapshot(store))
	}
}

func clearCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, cartSnapshot(store))
	}
}

// cartEventsHandler streams a cart snapshot over SSE on every mutation, plus
// one immediately on connect, so a client view never misses a change.
func cartEventsHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		changes, cancel := store.Watch()
		defer cancel()

		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.SSEvent("cart", cartSnapshot(store))
		c.Writer.Flush()

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case <-changes:
				c.SSEvent("cart", cartSnapshot(store))
				return true
			}
		})
	}
}
