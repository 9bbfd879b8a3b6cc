// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the document server's HTTP transport, including signal
// handling and graceful shutdown.
package server
