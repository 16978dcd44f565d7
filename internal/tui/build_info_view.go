// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-tweet/models"
)

func renderBuildInfoWindow(st styles, info models.BuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: go-tweet\n")
	b.WriteString("Version: " + info.Version + "\n")
	b.WriteString("Date: " + info.Date + "\n")
	b.WriteString("Commit: " + info.Commit + "\n")
	if serverVersion != "" {
		b.WriteString("Server: " + serverVersion)
	}

	return renderPage(st, "ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}
