// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package auth

import "time"

// # Token Lifetimes

const (
	// AccessTokenTTL is the validity window of short-lived access tokens.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the validity window of refresh sessions held in Redis.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the number of random bytes in a refresh token.
	RefreshTokenLength = 32
)

// # Validation Limits

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
	MaxEmailLength    = 254
)
