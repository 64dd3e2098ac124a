package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeesaf/internal/loyalty"
	checkoutsvc "coffeesaf/internal/service/checkout"
)

func loyaltyHandler(tracker *loyalty.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cards": tracker.Cards()})
	}
}

func verificationStateHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.VerificationState())
	}
}

func beginVerificationHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.BeginVerification())
	}
}

func cancelVerificationHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.CancelVerification())
	}
}

type phoneRequest struct {
	Phone string `json:"phone"`
}

func submitPhoneHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req phoneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone required"})
			return
		}
		c.JSON(http.StatusOK, svc.SubmitPhone(req.Phone))
	}
}

type codeRequest struct {
	Code string `json:"code"`
}

func submitCodeHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req codeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		state, phone, verified := svc.SubmitCode(req.Code)
		c.JSON(http.StatusOK, gin.H{
			"state":    state,
			"verified": verified,
			"phone":    phone,
		})
	}
}

func submitOrderHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
			return
		}
		o, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, checkoutsvc.ErrNotVerified), errors.Is(err, checkoutsvc.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}
