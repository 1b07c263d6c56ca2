// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the HTTP transport of the vault server.
//
// It owns the server lifecycle: background workers are started before the
// listener, and on SIGTERM, SIGINT or SIGQUIT the listener is shut down
// gracefully before the workers are stopped, so that notifications queued
// by in-flight requests are still delivered.
package server
