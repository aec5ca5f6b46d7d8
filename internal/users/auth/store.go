// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package auth

import (
	"context"
	"time"
)

// # Repository Contracts

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	/*
		Create persists a new user account.

		Returns dberr.ErrDuplicate when the username or email is already taken.
	*/
	Create(ctx context.Context, user *User) error

	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername retrieves a user by exact username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail retrieves a user by exact email.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// SessionRepository defines storage for refresh sessions.
//
// Implementations store only a hash of the refresh token, never the token
// itself, keyed to the owning user ID with a TTL.
type SessionRepository interface {
	// Set records a refresh session for userID under the given token hash.
	Set(ctx context.Context, tokenHash, userID string, ttl time.Duration) error

	// Get resolves a token hash to the owning user ID.
	Get(ctx context.Context, tokenHash string) (string, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, tokenHash string) error
}
