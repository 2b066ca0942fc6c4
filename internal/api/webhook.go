package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"keynudge/internal/model"
	"keynudge/internal/notifier"
)

const maxWebhookBody = 1 << 20 // 1MB

// handleWebhook answers a transcript webhook with a keyword notification.
// It always responds 200; unreadable payloads degrade to the no-segments message.
func (s *Server) handleWebhook(c *gin.Context) {
	uid := userID(c)
	payload := readTranscript(c, uid)

	result := notifier.Notify(payload, uid)
	log.Printf("[Webhook] rid=%s uid=%s message=%q", requestID(c), uid, result.Message)

	c.JSON(http.StatusOK, result)
}

// handleAssistWebhook behaves like handleWebhook but asks the nudger for a
// reply when no keyword rule matches.
func (s *Server) handleAssistWebhook(c *gin.Context) {
	uid := userID(c)
	payload := readTranscript(c, uid)

	result := notifier.Notify(payload, uid)

	text, ok := notifier.LatestText(payload)
	if ok && s.nudger != nil {
		if _, matched := notifier.Match(text); !matched {
			reply, err := s.nudger.Nudge(c.Request.Context(), text)
			if err != nil {
				log.Printf("[Webhook] rid=%s uid=%s nudge failed, using fallback: %v", requestID(c), uid, err)
			} else {
				result = model.NotificationResult{Message: reply}
			}
		}
	}

	log.Printf("[Webhook] rid=%s uid=%s assist message=%q", requestID(c), uid, result.Message)
	c.JSON(http.StatusOK, result)
}

// userID reads uid from the query string, then the X-User-ID header
func userID(c *gin.Context) string {
	if uid := c.Query("uid"); uid != "" {
		return uid
	}
	return c.GetHeader("X-User-ID")
}

// readTranscript decodes the request body. Any failure yields an empty payload.
func readTranscript(c *gin.Context, uid string) *model.TranscriptPayload {
	rid := requestID(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[Webhook] rid=%s uid=%s failed to read body: %v", rid, uid, err)
		return &model.TranscriptPayload{}
	}

	log.Printf("[Webhook] rid=%s uid=%s payload: %s", rid, uid, body)

	var payload model.TranscriptPayload
	if len(body) == 0 {
		return &payload
	}
	if err := binding.JSON.BindBody(body, &payload); err != nil {
		log.Printf("[Webhook] rid=%s uid=%s malformed transcript: %v", rid, uid, err)
		return &model.TranscriptPayload{}
	}
	return &payload
}
