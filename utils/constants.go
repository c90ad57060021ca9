// File: utils/constants.go
package utils

import "time"

// SettingsCacheKey holds the serialized admin settings snapshot.
const SettingsCacheKey = "settings:global"

// DefaultSettingsCacheTTL applies when SETTINGS_CACHE_TTL is unset.
const DefaultSettingsCacheTTL = 5 * time.Minute

// SessionTokenTTL is the lifetime of backend-issued session tokens.
const SessionTokenTTL = 7 * 24 * time.Hour

// MaxUploadSize caps every image upload.
const MaxUploadSize = 5 << 20

// Context keys set by the auth middleware.
const (
	CtxUserID     = "userID"
	CtxUserRole   = "userRole"
	CtxAdminID    = "adminID"
	CtxAdminEmail = "adminEmail"
	CtxAdminVia   = "adminVia"
)
