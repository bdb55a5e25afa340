// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/models"
)

type idGenerator interface {
	Generate() string
}

type recordService struct {
	recordRepository store.RecordRepository
	ids              idGenerator

	logger *logger.Logger
}

func NewRecordService(recordRepository store.RecordRepository, ids idGenerator, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		ids:              ids,
		logger:           logger,
	}
}

// SaveRecord assigns a fresh ID and stores the envelope as received.
func (r *recordService) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	record.ID = r.ids.Generate()
	record.CreatedAt = nil
	record.UpdatedAt = nil

	return r.recordRepository.SaveRecord(ctx, record)
}

func (r *recordService) GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error) {
	return r.recordRepository.GetRecord(ctx, ownerID, id)
}

func (r *recordService) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error) {
	return r.recordRepository.ListRecords(ctx, filter)
}

func (r *recordService) UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error {
	return r.recordRepository.UpdateWrappedKey(ctx, update)
}

func (r *recordService) DeleteRecord(ctx context.Context, ownerID int64, id string) error {
	return r.recordRepository.DeleteRecord(ctx, ownerID, id)
}
