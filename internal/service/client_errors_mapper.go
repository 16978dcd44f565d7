// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-tweet/internal/adapter"
)

var adapterKinds = []struct {
	adapterKind error
	kind        error
}{
	{adapter.ErrBadRequest, ErrValidation},
	{adapter.ErrUnauthorized, ErrAuth},
	{adapter.ErrForbidden, ErrForbidden},
	{adapter.ErrNotFound, ErrNotFound},
	{adapter.ErrConflict, ErrConflict},
	{adapter.ErrServiceUnavailable, ErrSearchUnavailable},
}

// mapAdapterError translates the adapter's transport error into a business
// error carrying the server's message. Errors without a matching kind are
// returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, k := range adapterKinds {
		if errors.Is(apiErr, k.adapterKind) {
			return &Error{Kind: k.kind, Message: apiErr.Message, Details: apiErr.Details}
		}
	}

	return err
}
