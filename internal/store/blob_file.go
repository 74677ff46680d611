// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
)

// fileBlobStorage keeps blobs as plain files in a single directory.
type fileBlobStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileBlobStorage returns a [BlobStorage] rooted at dir, creating the
// directory if needed.
func NewFileBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file blob storage")
	return &fileBlobStorage{dir: dir, logger: logger}, nil
}

// Put writes the blob to a temporary file and renames it into place, so a
// failed upload never leaves a partial blob under name.
func (f *fileBlobStorage) Put(ctx context.Context, name, _ string, _ int64, r io.Reader) (int64, error) {
	log := logger.FromContext(ctx)

	path, err := f.path(name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(f.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*fileBlobStorage.Put").Msg("failed to create temp file")
		return 0, fmt.Errorf("error creating blob file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*fileBlobStorage.Put").Str("name", name).Msg("failed to write blob")
		return 0, fmt.Errorf("error writing blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*fileBlobStorage.Put").Str("name", name).Msg("failed to move blob into place")
		return 0, fmt.Errorf("error writing blob: %w", err)
	}

	return written, nil
}

func (f *fileBlobStorage) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := f.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("error opening blob: %w", err)
	}

	return file, nil
}

func (f *fileBlobStorage) Delete(_ context.Context, name string) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error deleting blob: %w", err)
	}

	return nil
}

// path resolves name inside the storage directory. Names carrying any
// directory component are rejected.
func (f *fileBlobStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
	}

	return filepath.Join(f.dir, name), nil
}
