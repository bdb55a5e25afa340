// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/adapter"
	"github.com/MKhiriev/go-clinic-vault/internal/crypto"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
	"golang.org/x/sync/errgroup"
)

const defaultDecryptConcurrency = 4

// listPageSize is the page requested from the server. It equals the server
// cap, so a shorter page marks the end of the listing.
const listPageSize = maxListLimit

type clientRecordService struct {
	serverAdapter adapter.RecordServerAdapter
	keys          KeyPairStore
	envelopes     crypto.EnvelopeService

	concurrency int

	logger *logger.Logger
}

// NewClientRecordService returns a [ClientRecordService]. concurrency bounds
// the number of records decrypted in parallel by List.
func NewClientRecordService(serverAdapter adapter.RecordServerAdapter, keys KeyPairStore, envelopes crypto.EnvelopeService, concurrency int, logger *logger.Logger) ClientRecordService {
	if concurrency <= 0 {
		concurrency = defaultDecryptConcurrency
	}

	return &clientRecordService{
		serverAdapter: serverAdapter,
		keys:          keys,
		envelopes:     envelopes,
		concurrency:   concurrency,
		logger:        logger,
	}
}

func (s *clientRecordService) Create(ctx context.Context, ownerID int64, purpose models.Purpose, payload any) (models.EncryptedRecord, error) {
	pair, err := s.keys.InitializeKeyPair(ctx, ownerID, purpose)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("initialize key pair: %w", err)
	}
	if !pair.HasPublicKey() {
		return models.EncryptedRecord{}, ErrNoPublicKey
	}

	envelope, err := s.envelopes.EncryptForRecipient(payload, pair.PublicKey)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("encrypt record: %w", err)
	}

	saved, err := s.serverAdapter.SaveRecord(ctx, models.EncryptedRecord{
		OwnerID:  ownerID,
		Purpose:  purpose,
		Envelope: envelope,
	})
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("upload record: %w", mapAdapterError(err))
	}

	return saved, nil
}

func (s *clientRecordService) List(ctx context.Context, ownerID int64, purpose models.Purpose) ([]models.PlaintextRecord, error) {
	records, err := s.listAll(ctx, ownerID, purpose)
	if err != nil {
		return nil, err
	}

	return s.decryptAll(ctx, ownerID, records)
}

// listAll pages through the owner's records, newest first, until the server
// returns a short page.
func (s *clientRecordService) listAll(ctx context.Context, ownerID int64, purpose models.Purpose) ([]models.EncryptedRecord, error) {
	var records []models.EncryptedRecord

	filter := models.RecordFilter{OwnerID: ownerID, Purpose: purpose, Limit: listPageSize}
	for {
		page, err := s.serverAdapter.ListRecords(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("download records: %w", mapAdapterError(err))
		}
		records = append(records, page...)
		if uint64(len(page)) < filter.Limit {
			return records, nil
		}
		filter.Offset += uint64(len(page))
	}
}

// decryptAll opens every record with the key of its own purpose. Output
// order equals input order. A record that cannot be opened is returned as
// undecryptable; only a crypto-provider failure or a cancelled ctx fails
// the batch.
func (s *clientRecordService) decryptAll(ctx context.Context, ownerID int64, records []models.EncryptedRecord) ([]models.PlaintextRecord, error) {
	privateKeys := make(map[models.Purpose][]byte)
	for _, record := range records {
		if _, ok := privateKeys[record.Purpose]; !ok {
			privateKeys[record.Purpose] = s.keys.RetrieveKeyPair(ctx, ownerID, record.Purpose).PrivateKey
		}
	}

	results := make([]models.PlaintextRecord, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, record := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			plain, err := s.envelopes.DecryptWithPrivateKey(record.Envelope, privateKeys[record.Purpose])
			if err != nil {
				return fmt.Errorf("decrypt record %s: %w", record.ID, err)
			}
			plain.ID = record.ID
			results[i] = plain
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *clientRecordService) Get(ctx context.Context, ownerID int64, id string) (models.PlaintextRecord, error) {
	record, err := s.serverAdapter.GetRecord(ctx, ownerID, id)
	if err != nil {
		return models.PlaintextRecord{}, fmt.Errorf("download record: %w", mapAdapterError(err))
	}

	pair := s.keys.RetrieveKeyPair(ctx, ownerID, record.Purpose)
	plain, err := s.envelopes.DecryptWithPrivateKey(record.Envelope, pair.PrivateKey)
	if err != nil {
		return models.PlaintextRecord{}, fmt.Errorf("decrypt record %s: %w", id, err)
	}
	plain.ID = record.ID

	return plain, nil
}

func (s *clientRecordService) Delete(ctx context.Context, ownerID int64, id string) error {
	if err := s.serverAdapter.DeleteRecord(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete record: %w", mapAdapterError(err))
	}
	return nil
}

func (s *clientRecordService) Share(ctx context.Context, ownerID int64, id string, recipientPublicKey []byte) (models.Envelope, error) {
	record, err := s.serverAdapter.GetRecord(ctx, ownerID, id)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("download record: %w", mapAdapterError(err))
	}

	pair := s.keys.RetrieveKeyPair(ctx, ownerID, record.Purpose)
	envelope, err := s.envelopes.Rewrap(record.Envelope, pair.PrivateKey, recipientPublicKey)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("share record %s: %w", id, err)
	}

	return envelope, nil
}

func (s *clientRecordService) Rewrap(ctx context.Context, ownerID int64, purpose models.Purpose, newPublicKey []byte) (models.RewrapReport, error) {
	var report models.RewrapReport

	if err := validateScope(ownerID, purpose); err != nil {
		return report, err
	}
	if len(newPublicKey) != crypto.PublicKeySize {
		return report, fmt.Errorf("rewrap %s: %w: public key must be %d bytes", purpose, crypto.ErrInvalidKeyMaterial, crypto.PublicKeySize)
	}

	pair := s.keys.RetrieveKeyPair(ctx, ownerID, purpose)
	if !pair.HasPrivateKey() {
		return report, fmt.Errorf("rewrap %s: %w", purpose, crypto.ErrKeyUnavailable)
	}

	// every page is fetched before the first push, so the rewrap never
	// shifts a page it has yet to read
	records, err := s.listAll(ctx, ownerID, purpose)
	if err != nil {
		return report, err
	}

	for _, record := range records {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		envelope, err := s.envelopes.Rewrap(record.Envelope, pair.PrivateKey, newPublicKey)
		if err != nil {
			if errors.Is(err, crypto.ErrGeneratorFailure) {
				return report, fmt.Errorf("rewrap record %s: %w", record.ID, err)
			}
			s.logger.Warn().Err(err).
				Str("func", "clientRecordService.Rewrap").
				Int64("owner_id", ownerID).
				Str("record_id", record.ID).
				Msg("record skipped, left unchanged")
			report.Skipped++
			report.SkippedIDs = append(report.SkippedIDs, record.ID)
			continue
		}

		err = s.serverAdapter.UpdateWrappedKey(ctx, models.WrappedKeyUpdate{
			ID:         record.ID,
			OwnerID:    ownerID,
			WrappedKey: envelope.WrappedKey,
		})
		if err != nil {
			return report, fmt.Errorf("push wrapped key of record %s: %w", record.ID, mapAdapterError(err))
		}
		report.Rewrapped++
	}

	return report, nil
}
