package shipment

import (
	"encoding/json"
)

// Receipt is what a successful dispatch reports back.
type Receipt struct {
	Endpoint string
	Tracking string
	Label    string
	Body     json.RawMessage
}

type trackingFields struct {
	Tracking string `json:"tracking"`
	Label    string `json:"label"`
}

// ParseReceipt extracts tracking and label from a partner reply. The partner
// keys its reply by order reference; a flat {tracking, label} document is
// accepted too. Unrecognized documents yield empty values.
func ParseReceipt(body []byte, reference string) (string, string) {
	var flat trackingFields
	if err := json.Unmarshal(body, &flat); err == nil && flat.Tracking != "" {
		return flat.Tracking, flat.Label
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(body, &keyed); err != nil {
		return "", ""
	}

	if raw, ok := keyed[reference]; ok {
		var entry trackingFields
		if err := json.Unmarshal(raw, &entry); err == nil {
			return entry.Tracking, entry.Label
		}
	}

	for _, raw := range keyed {
		var entry trackingFields
		if err := json.Unmarshal(raw, &entry); err == nil && entry.Tracking != "" {
			return entry.Tracking, entry.Label
		}
	}

	return "", ""
}
