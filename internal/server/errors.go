// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("vault HTTP handler is not created")
	errNoHTTPAddress = errors.New("vault HTTP address is empty")
)
