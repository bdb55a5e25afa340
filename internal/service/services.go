// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
)

type Services struct {
	RecordService  RecordService
	BlobService    BlobService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		RecordService:  NewRecordValidationService().Wrap(NewRecordService(storages.RecordRepository, ids, logger)),
		BlobService:    NewBlobService(storages.BlobRepository, storages.BlobFiles, ids, logger),
		AppInfoService: appInfo,
	}, nil
}
