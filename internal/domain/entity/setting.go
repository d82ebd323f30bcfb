package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Known setting keys. The value payload is an opaque JSON blob owned by the
// client; the server only enforces the key namespace and schema version.
const (
	SettingTheme         = "theme"
	SettingNotifications = "notifications"
	SettingTranslation   = "translation"
	SettingCalculation   = "calculation_method"
)

// SettingSchemaVersion is stamped on every write so future schema changes
// can migrate stored blobs.
const SettingSchemaVersion = 1

// Setting is one named, versioned preference blob for a user.
type Setting struct {
	UserID    uuid.UUID
	Key       string
	Version   int
	Value     json.RawMessage
	UpdatedAt time.Time
}
