// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

/*
Package auth implements the user identity layer.

It defines the core domain entity (User) and the logic for registration,
credential verification, and access-token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/todone-app/todone/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
//
// The username is immutable after creation and the role is assigned at
// registration time (always [sec.RoleUser]; elevation is an administrative
// action outside this service).
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldMessage  = "message"
)
