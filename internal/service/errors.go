// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Validation errors.
var (
	// ErrInvalidCredentialsInput is returned by signup and login when the
	// e-mail is malformed or the password is too short.
	ErrInvalidCredentialsInput = errors.New("invalid credentials input")

	// ErrInvalidNoteInput is returned when both title and content are empty.
	ErrInvalidNoteInput = errors.New("invalid note input")
)

// Conflict errors.
var (
	ErrEmailAlreadyExists = errors.New("email is already registered")
)

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials is returned by login for an unknown e-mail and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrTokenIsExpiredOrInvalid is returned for any token that fails
	// signature, issuer, expiry or claim checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnauthorizedAccess is returned when the caller addresses data of a
	// different user.
	ErrUnauthorizedAccess = errors.New("unauthorized access to data of a different user")
)

// Not found errors.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrUserNotFound = errors.New("user not found")
)

// Internal errors. Handlers report these with a generic message.
var (
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashFailed  = errors.New("password hashing failed")
)
