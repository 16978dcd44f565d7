// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/service"
)

const (
	msgServerUnavailable = "No network connection or the server is unavailable"
	msgSessionExpired    = "Your session has expired, please log in again"

	msgServerVersionUnknown = "unreachable"
)

// humanizeError turns err into a message for the error overlay. Messages
// sent by the server are shown as is, followed by per-field details.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if message, details, ok := service.Message(err); ok {
		if len(details) == 0 {
			return message
		}
		var b strings.Builder
		b.WriteString(message)
		for _, field := range slices.Sorted(maps.Keys(details)) {
			b.WriteString("\n  ")
			b.WriteString(field)
			b.WriteString(": ")
			b.WriteString(details[field])
		}
		return b.String()
	}

	if errors.Is(err, service.ErrNotSignedIn) {
		return msgSessionExpired
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return adapter.FallbackMessage
}

// isSessionLost reports whether err means the stored token is no longer
// accepted and the user has to sign in again.
func isSessionLost(err error) bool {
	return errors.Is(err, service.ErrAuth) || errors.Is(err, service.ErrNotSignedIn)
}
