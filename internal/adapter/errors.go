// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors for non-2xx responses of the notes API.
var (
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned by [NewHTTPNotesAPI] for an empty or
	// unparsable base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
