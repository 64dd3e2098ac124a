package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffeesaf/internal/domain"
)

type catalogService interface {
	ListAll(ctx context.Context) ([]domain.CoffeeItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.CoffeeItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*domain.CoffeeItem, error)
}

func listCoffeeHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			items []domain.CoffeeItem
			err   error
		)
		if category := c.Query("category"); category != "" {
			items, err = svc.ListByCategory(c.Request.Context(), category)
		} else {
			items, err = svc.ListAll(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		if items == nil {
			items = []domain.CoffeeItem{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func getCoffeeHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		item, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "coffee not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func listCategoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
