// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clinic-vault/models"
)

// parsePurpose accepts an empty value only when allowAll is set.
func parsePurpose(raw string, allowAll bool) (models.Purpose, error) {
	if raw == "" && allowAll {
		return "", nil
	}

	purpose := models.Purpose(strings.TrimSpace(raw))
	if !purpose.Valid() {
		return "", fmt.Errorf("%w: %q", errInvalidPurpose, raw)
	}
	return purpose, nil
}

func purposesFlagUsage() string {
	names := make([]string, 0, len(models.Purposes))
	for _, p := range models.Purposes {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

func encodePublicKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

func decodePublicKey(raw string) ([]byte, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errNoRecipient
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidPublicKey, err)
	}
	return key, nil
}
