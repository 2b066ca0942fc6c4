package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type demoPage struct {
	Slug     string
	Title    string
	Headline string
	Points   []string
}

var promoCodesPage = demoPage{
	Slug:     "promo-codes",
	Title:    "Promotion codes at checkout",
	Headline: "Let customers redeem promotion codes on the hosted checkout page.",
	Points: []string{
		"Checkout sessions are created with promotion codes enabled.",
		"Customers enter a code in the \"Add promotion code\" field.",
		"Codes are created and managed in the payment provider dashboard.",
	},
}

var discountsPage = demoPage{
	Slug:     "discounts",
	Title:    "Showing the applied discount",
	Headline: "After payment the success page reads the session back and shows the discount.",
	Points: []string{
		"Checkout sessions are created with promotion codes enabled.",
		"The success page retrieves the session by its ID.",
		"Total paid and discount amount come from the session's totals.",
	},
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Promotion code demos",
		"pages":    []demoPage{promoCodesPage, discountsPage},
		"payments": s.payments != nil,
	})
}

func (s *Server) handlePromoCodesPage(c *gin.Context) {
	s.renderDemo(c, promoCodesPage)
}

func (s *Server) handleDiscountsPage(c *gin.Context) {
	s.renderDemo(c, discountsPage)
}

func (s *Server) renderDemo(c *gin.Context, page demoPage) {
	c.HTML(http.StatusOK, "demo.html", gin.H{
		"title":    page.Title,
		"page":     page,
		"payments": s.payments != nil,
	})
}

// handleSuccess is the checkout success URL; it shows what the customer paid
func (s *Server) handleSuccess(c *gin.Context) {
	id := c.Query("session_id")
	if id == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"title": "Missing session",
			"error": "session_id is required",
		})
		return
	}

	summary, err := s.payments.GetSession(c.Request.Context(), id)
	if err != nil {
		log.Printf("[Checkout] rid=%s success page lookup for %s failed: %v", requestID(c), id, err)
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"title": "Checkout lookup failed",
			"error": providerMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"title":   "Payment successful",
		"session": summary,
	})
}

func (s *Server) handleCancel(c *gin.Context) {
	c.HTML(http.StatusOK, "cancel.html", gin.H{
		"title": "Checkout canceled",
	})
}
