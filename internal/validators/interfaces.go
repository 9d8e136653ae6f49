// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage.
//
// [CredentialsValidator] enforces the e-mail shape and minimum password
// length of signup and login requests. [NoteValidator] rejects note bodies
// that fail the note rules. Both accept optional field names that narrow the
// check to those fields.
package validators

import "context"

// Validator validates obj, optionally only the named fields. It returns an
// error wrapping one of the package sentinels when obj is rejected, or
// [ErrUnsupportedType] for a value it does not know.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
