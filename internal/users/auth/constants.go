// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package auth

// # Authentication Constraints

const (
	// PasswordMinLength is the minimum accepted password length at registration.
	// The hash itself has no length requirement; this is a hygiene floor.
	PasswordMinLength = 8

	// UsernameMinLength is the minimum accepted username length at registration.
	UsernameMinLength = 3

	// UsernameMaxLength bounds usernames so the unique index stays cheap.
	UsernameMaxLength = 64
)
