// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArguments = errors.New("wrong number of arguments")
)
