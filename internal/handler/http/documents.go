// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/service"
	"github.com/MKhiriev/go-form-cache/internal/utils"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds decoded request bodies. A full batch of large records
// still fits.
const maxBodySize = 32 << 20

// changes serves GET /api/collections/{collection}?since=<millis>.
func (h *Handler) changes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("since", raw).Msg("invalid since parameter")
			utils.WriteError(w, fmt.Sprintf("%s: since must be unix millis", service.ErrInvalidDataProvided), http.StatusBadRequest)
			return
		}
		since = parsed
	}

	records, err := h.services.DocumentService.Changes(r.Context(), collection, since)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	_, _ = utils.WriteJSON(w, models.ChangesResponse{
		Collection: collection,
		Records:    records,
		Length:     len(records),
	}, http.StatusOK)
}

// getDocument serves GET /api/collections/{collection}/{id}.
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	record, err := h.services.DocumentService.Get(r.Context(), collection, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}

// mergeDocument serves PATCH /api/collections/{collection}/{id}. The body is
// the record to merge; its id may be omitted but must not differ from the
// path.
func (h *Handler) mergeDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	var record models.Record
	if err := decodeBody(w, r, &record); err != nil {
		log.Err(err).Msg("error decoding merge body")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	switch record.ID {
	case "":
		record.ID = id
	case id:
	default:
		utils.WriteError(w, fmt.Sprintf("%s: body id %q does not match path id %q", service.ErrInvalidDataProvided, record.ID, id), http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.Merge(r.Context(), collection, record); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteDocument serves DELETE /api/collections/{collection}/{id}.
func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(r.Context(), collection, id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// batch serves POST /api/batch.
func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.BatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Err(err).Msg("error decoding batch body")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	committed, err := h.services.DocumentService.Batch(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int("committed", committed).Msg("batch committed")
	_, _ = utils.WriteJSON(w, models.BatchResponse{Committed: committed}, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// writeServiceError maps err to a status and writes it as a JSON error body.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	utils.WriteError(w, msg, status)
}
