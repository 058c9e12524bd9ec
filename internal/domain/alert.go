package domain

import "time"

// Alert record statuses. One record is written per dispatch attempt and
// never mutated afterwards.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// AlertRecordType is the constant partition value shared by all alert
// records so the recency GSI can serve an ordered query.
const AlertRecordType = "alert"

// Location is an optional coordinate pair attached to an alert request.
// Coordinates are pointers so a half-specified location can be told apart
// from one at the zero meridian or equator.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AlertRequest is the inbound dispatch payload. Optional fields use
// pointers: a field participates in message composition when it was
// provided, including explicit zero values.
type AlertRequest struct {
	PhoneNumber string    `json:"phoneNumber" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	Location    *Location `json:"location,omitempty"`
	Intensity   *float64  `json:"intensity,omitempty"`
	Timestamp   string    `json:"timestamp,omitempty"`
}

// AlertRecord is the persisted outcome of one dispatch attempt.
// AlertID, RecordType and CreatedAt are assigned by the store layer on write.
type AlertRecord struct {
	AlertID          string    `json:"id" dynamodbav:"alert_id"`
	RecordType       string    `json:"-" dynamodbav:"record_type"`
	PhoneNumber      string    `json:"phoneNumber" dynamodbav:"phone_number"`
	Message          string    `json:"message" dynamodbav:"message"`
	Status           string    `json:"status" dynamodbav:"status"`
	GatewayMessageID string    `json:"gatewayMessageId,omitempty" dynamodbav:"gateway_message_id,omitempty"`
	GatewayStatus    string    `json:"gatewayStatus,omitempty" dynamodbav:"gateway_status,omitempty"`
	Error            string    `json:"error,omitempty" dynamodbav:"error,omitempty"`
	CreatedAt        time.Time `json:"createdAt" dynamodbav:"created_at"`
}

// Receipt is the gateway's synchronous acknowledgement of an accepted message.
type Receipt struct {
	MessageID string
	Status    string
}

// DispatchResult is returned to the caller after a successful dispatch.
type DispatchResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
