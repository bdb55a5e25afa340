// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/adapter"
	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/crypto"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
)

type ClientServices struct {
	KeyPairStore      KeyPairStore
	RecordService     ClientRecordService
	AttachmentService ClientAttachmentService
	ServerAdapter     adapter.RecordServerAdapter
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.RecordServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	sealer, err := newSealer(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("create private key sealer: %w", err)
	}

	generator := crypto.NewKeyMaterialGenerator()
	cipher := crypto.NewSymmetricCipher()
	wrapper := crypto.NewKeyWrapper(generator)

	keys := NewKeyPairStore(storages.KeyPairRepository, wrapper, sealer, cfg.Workers.KeyCacheTTL, logger)

	return &ClientServices{
		KeyPairStore:      keys,
		RecordService:     NewClientRecordService(serverAdapter, keys, crypto.NewEnvelopeService(generator, cipher, wrapper, logger), cfg.Workers.DecryptConcurrency, logger),
		AttachmentService: NewClientAttachmentService(serverAdapter, keys, crypto.NewFileEnvelope(generator, cipher, wrapper), logger),
		ServerAdapter:     serverAdapter,
	}, nil
}

func newSealer(cfg config.ClientApp) (crypto.PrivateKeySealer, error) {
	if cfg.KeyPassphrase == "" {
		return crypto.NewPlainSealer(), nil
	}

	workFactor := cfg.AgeWorkFactor
	if workFactor <= 0 {
		workFactor = crypto.DefaultWorkFactor
	}
	return crypto.NewPassphraseSealer(cfg.KeyPassphrase, workFactor)
}
