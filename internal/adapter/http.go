// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/utils"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/go-resty/resty/v2"
)

const (
	collectionsPath = "/api/collections/{collection}"
	documentPath    = "/api/collections/{collection}/{id}"
	batchPath       = "/api/batch"
	currentUserPath = "/api/users/me"
)

// HTTPRemoteStore talks to the document server over REST. It implements
// both [RemoteStore] and [IdentityProvider].
type HTTPRemoteStore struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

var (
	_ RemoteStore      = (*HTTPRemoteStore)(nil)
	_ IdentityProvider = (*HTTPRemoteStore)(nil)
)

// NewHTTPRemoteStore normalises adapterCfg.HTTPAddress, configures the
// underlying resty client with it and the request timeout, and keeps the
// bearer token for every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRemoteStore(adapterCfg config.Adapter, log *logger.Logger) (*HTTPRemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &HTTPRemoteStore{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// QueryChangedSince implements [RemoteStore] via
// GET /api/collections/{collection}?since=<millis>.
func (h *HTTPRemoteStore) QueryChangedSince(ctx context.Context, collection string, since int64) ([]models.Record, error) {
	return h.query(ctx, collection, since)
}

// QueryAll implements [RemoteStore]; it is the same endpoint with since=0.
func (h *HTTPRemoteStore) QueryAll(ctx context.Context, collection string) ([]models.Record, error) {
	return h.query(ctx, collection, 0)
}

func (h *HTTPRemoteStore) query(ctx context.Context, collection string, since int64) ([]models.Record, error) {
	req := h.authedRequest(ctx).SetPathParam("collection", collection)
	if since > 0 {
		req.SetQueryParam("since", strconv.FormatInt(since, 10))
	}

	resp, err := req.Get(collectionsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrTransport, collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	var cr models.ChangesResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	h.logger.Debug().
		Str("func", "HTTPRemoteStore.query").
		Str("collection", collection).
		Int64("since", since).
		Int("count", len(cr.Records)).
		Msg("collection fetched")

	return cr.Records, nil
}

// GetOne implements [RemoteStore] via GET /api/collections/{collection}/{id}.
func (h *HTTPRemoteStore) GetOne(ctx context.Context, collection, id string) (models.Record, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		Get(documentPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: get %s/%s: %w", ErrTransport, collection, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	var rec models.Record
	if err = json.Unmarshal(resp.Body(), &rec); err != nil {
		return models.Record{}, fmt.Errorf("decode document: %w", err)
	}
	return rec, nil
}

// MergeWrite implements [RemoteStore] via PATCH /api/collections/{collection}/{id}.
func (h *HTTPRemoteStore) MergeWrite(ctx context.Context, collection string, r models.Record) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"collection": collection, "id": r.ID}).
		SetHeader("Content-Type", "application/json").
		SetBody(r).
		Patch(documentPath)
	if err != nil {
		return fmt.Errorf("%w: merge %s/%s: %w", ErrTransport, collection, r.ID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("merge %s/%s: %w", collection, r.ID, err)
	}
	return nil
}

// DeleteOne implements [RemoteStore] via DELETE /api/collections/{collection}/{id}.
func (h *HTTPRemoteStore) DeleteOne(ctx context.Context, collection, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		Delete(documentPath)
	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %w", ErrTransport, collection, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// CommitBatch implements [RemoteStore] via POST /api/batch. The server
// applies the operations in one transaction.
func (h *HTTPRemoteStore) CommitBatch(ctx context.Context, ops []models.Operation) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchRequest{Operations: ops, Length: len(ops)}).
		Post(batchPath)
	if err != nil {
		return fmt.Errorf("%w: commit batch: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("commit batch of %d: %w", len(ops), err)
	}

	var br models.BatchResponse
	if err = json.Unmarshal(resp.Body(), &br); err == nil && br.Committed != len(ops) {
		h.logger.Warn().
			Str("func", "HTTPRemoteStore.CommitBatch").
			Int("sent", len(ops)).
			Int("committed", br.Committed).
			Msg("server reported a different committed count")
	}
	return nil
}

// CurrentUser implements [IdentityProvider] via GET /api/users/me.
func (h *HTTPRemoteStore) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get(currentUserPath)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: current user: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, fmt.Errorf("current user: %w", err)
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user: %w", err)
	}
	return user, nil
}

func (h *HTTPRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
