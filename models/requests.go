// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangesResponse is returned by the document server for collection reads.
type ChangesResponse struct {
	Collection string   `json:"collection"`
	Records    []Record `json:"records"`
	Length     int      `json:"length"`
}

// BatchRequest is a batched commit sent to the document server.
type BatchRequest struct {
	Operations []Operation `json:"operations"`
	Length     int         `json:"length"`
}

// BatchResponse reports how many operations were committed.
type BatchResponse struct {
	Committed int `json:"committed"`
}
