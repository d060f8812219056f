package models

import "time"

// Settings is store-level metadata, created once at init and carried in
// every saved blob.
type Settings struct {
	InstallID string    `json:"install_id"`
	CreatedAt time.Time `json:"created_at"`
}
