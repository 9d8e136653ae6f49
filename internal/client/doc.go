// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// An [App] turns a command and its positional arguments into one call of
// [adapter.NotesAPI] and prints the result as indented JSON.
package client
