// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the vault server.
//
// It exposes route wiring, request handlers, and middleware for the bulk
// vault endpoints: key rotation, personal and organization import, and
// cipher re-sync. Request tracing, access logging, bearer authentication and
// request decompression are handled here before requests are delegated to
// the service layer.
package http
