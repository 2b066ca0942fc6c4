package model

import "encoding/json"

// Segment is one span of transcribed speech. Only text is decoded; speaker,
// timing and any other producer fields are ignored.
type Segment struct {
	Text string `json:"text"`

	// malformed is set when the segment is not an object or its text is not a string
	malformed bool
}

// UnmarshalJSON decodes a segment without ever failing, so one bad segment
// cannot invalidate the rest of the payload.
func (s *Segment) UnmarshalJSON(data []byte) error {
	*s = Segment{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		s.malformed = true
		return nil
	}

	raw, ok := fields["text"]
	if !ok || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, &s.Text); err != nil {
		s.malformed = true
	}
	return nil
}

// Malformed reports whether the segment could not be read as an object with string text
func (s Segment) Malformed() bool {
	return s.malformed
}

// TranscriptPayload is the body delivered to the transcript webhook
type TranscriptPayload struct {
	Segments []Segment `json:"segments"`
}

// NotificationResult is serialized verbatim as the webhook response body
type NotificationResult struct {
	Message string `json:"message"`
}
