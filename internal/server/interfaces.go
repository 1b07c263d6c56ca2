// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server runs until a termination signal arrives.
type Server interface {
	RunServer()

	Shutdown()
}

// Worker is a background process started with the server and stopped after
// the listener has shut down.
type Worker interface {
	Run()
	Stop()
}
