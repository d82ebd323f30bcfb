package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a user's device registered for prayer reminder
// push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for the device record.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	DeviceID  string    `json:"device_id"`  // Unique device identifier from the client.
	Platform  string    `json:"platform"`   // Device platform (ios, android, web).
	Latitude  float64   `json:"latitude"`   // Last known device latitude, for reminder timing.
	Longitude float64   `json:"longitude"`  // Last known device longitude.
	IsActive  bool      `json:"is_active"`  // Indicates if this device receives reminders.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
