// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as session checks, request tracing, access
// logging, metrics, CORS and response compression are handled in this
// package before requests are delegated to the service layer. Every
// response is a JSON envelope with a "success" flag.
package http
