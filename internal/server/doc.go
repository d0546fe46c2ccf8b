// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the gateway's HTTP server.
//
// It owns the server lifecycle: startup, background workers, signal
// handling and graceful shutdown.
package server
