// Package notifier turns the latest transcript segment into a short canned
// notification by scanning an ordered keyword table.
package notifier

import (
	"fmt"
	"strings"

	"keynudge/internal/model"
)

// NoSegmentsMessage is returned when the payload carries no segments
const NoSegmentsMessage = "No transcript segments found"

// rule pairs a set of keywords with the message sent when any of them appears
type rule struct {
	Keywords []string
	Message  string
}

// rules are evaluated top to bottom, first match wins
var rules = []rule{
	{Keywords: []string{"tired"}, Message: "You mentioned being tired. Consider taking a break to rest and recharge!"},
	{Keywords: []string{"break"}, Message: "Good idea! Taking regular breaks is important for productivity and well-being."},
	{Keywords: []string{"stressed", "stress"}, Message: "It sounds like you might be feeling stressed. Try some deep breathing or a short walk."},
	{Keywords: []string{"hungry"}, Message: "Time for a snack! Make sure to fuel your body with nutritious food."},
	{Keywords: []string{"help"}, Message: "I'm here to help! Feel free to ask if you need assistance with anything."},
	{Keywords: []string{"thank"}, Message: "You're welcome! I'm glad I could help."},
}

// LatestText returns the lower-cased text of the last segment.
// ok is false when the payload has no segments or the last one is unreadable.
func LatestText(payload *model.TranscriptPayload) (text string, ok bool) {
	if payload == nil || len(payload.Segments) == 0 {
		return "", false
	}
	last := payload.Segments[len(payload.Segments)-1]
	if last.Malformed() {
		return "", false
	}
	return strings.ToLower(last.Text), true
}

// Match scans the keyword table against already lower-cased text
func Match(text string) (string, bool) {
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Message, true
			}
		}
	}
	return "", false
}

// Fallback is the message used when no keyword matched. It echoes the lower-cased text.
func Fallback(text string) string {
	return fmt.Sprintf("Received transcript: '%s'", text)
}

// Notify builds the notification for a transcript payload. uid identifies the
// caller and does not influence the result.
func Notify(payload *model.TranscriptPayload, uid string) model.NotificationResult {
	text, ok := LatestText(payload)
	if !ok {
		return model.NotificationResult{Message: NoSegmentsMessage}
	}

	if msg, matched := Match(text); matched {
		return model.NotificationResult{Message: msg}
	}

	return model.NotificationResult{Message: Fallback(text)}
}
