// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrRouteNotFound is reported for any request no route matched.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingIdentity is returned when a protected handler runs without
	// a caller identity in its context.
	ErrMissingIdentity = errors.New("no caller identity in request context")
)

// Fallback messages of the 500 responses, one per operation.
const (
	msgSignupFailed     = "Signing up failed, please try again later."
	msgLoginFailed      = "Logging in failed, please try again later."
	msgFetchNotesFailed = "Fetching notes failed, please try again later"
	msgGetNoteFailed    = "Something went wrong, could not find the note"
	msgAddNoteFailed    = "Adding note failed, please try again."
	msgEditNoteFailed   = "Updating note failed, please try again."
	msgDeleteNoteFailed = "Something went wrong, please try again."
)
