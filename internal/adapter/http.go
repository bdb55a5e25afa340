// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
	"github.com/MKhiriev/go-clinic-vault/models"
)

const (
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [RecordServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL, the request timeout and the retry policy.
//
// Returns an error wrapping [ErrInvalidServerAddress] if adapterCfg.ServerURL
// is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RecordServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(adapterCfg.MaxRetries).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(retryableResponse)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SaveRecord implements [RecordServerAdapter]. It POSTs the envelope to
// POST /api/records and decodes the stored record from the response.
func (h *httpServerAdapter) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	var saved models.EncryptedRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&saved).
		Post("/api/records")
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("save record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedRecord{}, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.SaveRecord").
		Int64("owner_id", saved.OwnerID).
		Str("record_id", saved.ID).
		Msg("record uploaded")

	return saved, nil
}

// ListRecords implements [RecordServerAdapter]. Purpose, Limit and Offset
// are sent only when set.
func (h *httpServerAdapter) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error) {
	var records []models.EncryptedRecord

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("owner_id", strconv.FormatInt(filter.OwnerID, 10)).
		SetResult(&records)
	if filter.Purpose != "" {
		req.SetQueryParam("purpose", filter.Purpose.String())
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	}

	resp, err := req.Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// GetRecord implements [RecordServerAdapter].
func (h *httpServerAdapter) GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error) {
	var record models.EncryptedRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParam("owner_id", strconv.FormatInt(ownerID, 10)).
		SetResult(&record).
		Get("/api/records/{id}")
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedRecord{}, err
	}

	return record, nil
}

// UpdateWrappedKey implements [RecordServerAdapter]. It PUTs the new wrapped
// key to PUT /api/records/{id}/wrapped-key.
func (h *httpServerAdapter) UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", update.ID).
		SetBody(update).
		Put("/api/records/{id}/wrapped-key")
	if err != nil {
		return fmt.Errorf("update wrapped key request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteRecord implements [RecordServerAdapter].
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, ownerID int64, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParam("owner_id", strconv.FormatInt(ownerID, 10)).
		Delete("/api/records/{id}")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// SaveBlob implements [RecordServerAdapter]. The ciphertext travels base64
// encoded inside the JSON body.
func (h *httpServerAdapter) SaveBlob(ctx context.Context, blob models.EncryptedBlob) (models.EncryptedBlob, error) {
	var saved models.EncryptedBlob

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(blob).
		SetResult(&saved).
		Post("/api/blobs")
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("save blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedBlob{}, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.SaveBlob").
		Int64("owner_id", saved.OwnerID).
		Str("blob_id", saved.ID).
		Int64("size", saved.Size).
		Msg("blob uploaded")

	return saved, nil
}

// GetBlob implements [RecordServerAdapter].
func (h *httpServerAdapter) GetBlob(ctx context.Context, ownerID int64, id string) (models.EncryptedBlob, error) {
	var blob models.EncryptedBlob

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParam("owner_id", strconv.FormatInt(ownerID, 10)).
		SetResult(&blob).
		Get("/api/blobs/{id}")
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("get blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedBlob{}, err
	}

	return blob, nil
}

// GetServerVersion implements [RecordServerAdapter]. The server answers
// GET /api/version with a plain-text body.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
