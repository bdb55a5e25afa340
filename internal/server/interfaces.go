// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the record server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received and the
// server has shut down.
type Server interface {
	RunServer()
	Shutdown()
}
