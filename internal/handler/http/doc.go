// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the document server.
//
// It exposes the collection, document and batch endpoints the client sync
// engine talks to, plus the current-user and version endpoints. Tracing,
// access logging, compression and bearer authentication are handled here
// before requests reach the service layer.
package http
