package extractor

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawSchema is the loosely-typed extraction result as the language model
// emits it. Nothing here is trusted: the capture normalizer repairs every
// field before anything reaches validation or storage.
type RawSchema struct {
	Date     string    `json:"date"`     // YYYY-MM-DD in the user's timezone
	Timezone string    `json:"timezone"` // IANA name echoed back by the model
	Tasks    []RawTask `json:"tasks"`
	Language string    `json:"language"`
}

// RawTask is one extracted item. Kind and Time.Type are free-form strings
// until normalization coerces them.
type RawTask struct {
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Note        string     `json:"note"`
	Time        RawTime    `json:"time"`
	EstimateMin FlexNumber `json:"estimateMin"`
	Priority    string     `json:"priority"`
	Confidence  FlexNumber `json:"confidence"`
}

// RawTime holds naive local timestamps (YYYY-MM-DDTHH:mm, no zone suffix)
// or natural phrases the model failed to resolve. Empty string = absent.
type RawTime struct {
	Type       string `json:"type"` // range | deadline | none | anything
	StartLocal string `json:"startLocal"`
	EndLocal   string `json:"endLocal"`
	DueLocal   string `json:"dueLocal"`
}

// FlexNumber tolerates the model emitting a number, a numeric string, or
// garbage. Known is false unless a finite numeric value was decoded.
type FlexNumber struct {
	Value float64
	Known bool
}

// UnmarshalJSON never fails: unparseable input simply stays unknown.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			n.Value, n.Known = v, true
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	n.Value, n.Known = v, true
	return nil
}
