package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"keynudge/internal/checkout"
	"keynudge/internal/utils"
)

// CreateCheckoutRequest is the optional JSON body of POST /api/checkout/sessions
type CreateCheckoutRequest struct {
	Quantity      int64  `json:"quantity" binding:"omitempty,min=1,max=99"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

// handleCreateCheckoutForm is the demo pages' form target; it redirects to the hosted checkout
func (s *Server) handleCreateCheckoutForm(c *gin.Context) {
	source := c.DefaultPostForm("page", "demo")

	session, err := s.payments.CreateSession(c.Request.Context(), checkout.CreateSessionInput{
		Quantity: 1,
		Metadata: map[string]string{"source": source},
	})
	if err != nil {
		log.Printf("[Checkout] rid=%s create session (page=%s) failed: %v", requestID(c), source, err)
		utils.Error(c, http.StatusBadRequest, providerMessage(err))
		return
	}

	log.Printf("[Checkout] rid=%s redirecting to session %s", requestID(c), session.ID)
	c.Redirect(http.StatusSeeOther, session.URL)
}

// handleAPICreateSession creates a session and returns its id and url as JSON
func (s *Server) handleAPICreateSession(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(c, http.StatusBadRequest, "invalid checkout request: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	session, err := s.payments.CreateSession(c.Request.Context(), checkout.CreateSessionInput{
		Quantity:      req.Quantity,
		CustomerEmail: req.CustomerEmail,
		Metadata:      map[string]string{"source": "api"},
	})
	if err != nil {
		log.Printf("[Checkout] rid=%s create session failed: %v", requestID(c), err)
		utils.Error(c, http.StatusBadRequest, providerMessage(err))
		return
	}

	utils.Success(c, gin.H{
		"id":  session.ID,
		"url": session.URL,
	})
}

// handleAPIGetSession returns the customer email, total and discount of a session
func (s *Server) handleAPIGetSession(c *gin.Context) {
	id := c.Param("id")

	summary, err := s.payments.GetSession(c.Request.Context(), id)
	if err != nil {
		log.Printf("[Checkout] rid=%s get session %s failed: %v", requestID(c), id, err)
		utils.Error(c, http.StatusBadRequest, providerMessage(err))
		return
	}

	utils.Success(c, gin.H{
		"id":              summary.ID,
		"customer_email":  summary.CustomerEmail,
		"amount_total":    summary.AmountTotal,
		"amount_discount": summary.AmountDiscount,
		"currency":        summary.Currency,
		"payment_status":  summary.PaymentStatus,
	})
}

// providerMessage extracts the payment provider's error text
func providerMessage(err error) string {
	var perr *checkout.ProviderError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return err.Error()
}

// formatAmount renders an amount in the smallest currency unit, e.g. 1999 usd -> "19.99 USD"
func formatAmount(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, strings.ToUpper(currency))
}
