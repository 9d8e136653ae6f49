// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (seeded from an optional .env file)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the HTTP server and
// [GetClientConfig] for the command-line client.
package config
