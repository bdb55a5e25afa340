// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
)

// blobFileStorage writes blob ciphertext to one file per blob under dir.
// Files are named by blob UUID, sharded by the first two characters.
type blobFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewBlobFileStorage creates dir if needed and returns a [BlobFileStorage].
func NewBlobFileStorage(dir string, logger *logger.Logger) (BlobFileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &blobFileStorage{dir: dir, logger: logger}, nil
}

func (s *blobFileStorage) path(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBlobID, err)
	}
	name := parsed.String()
	return filepath.Join(s.dir, name[:2], name), nil
}

// WriteBlob implements [BlobFileStorage]. The file is written to a temporary
// name and renamed, so readers never see a partial blob.
func (s *blobFileStorage) WriteBlob(ctx context.Context, id string, ciphertext []byte) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create blob shard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".blob-*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(ciphertext); err != nil {
		tmp.Close()
		return fmt.Errorf("write blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close blob: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blobFileStorage.WriteBlob").
			Str("blob_id", id).
			Msg("failed to move blob into place")
		return fmt.Errorf("store blob: %w", err)
	}

	return nil
}

// ReadBlob implements [BlobFileStorage].
func (s *blobFileStorage) ReadBlob(_ context.Context, id string) ([]byte, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}

	return data, nil
}

// RemoveBlob implements [BlobFileStorage]. Removing a missing blob is not an
// error.
func (s *blobFileStorage) RemoveBlob(_ context.Context, id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}
