// Package http serves the tweet REST API.
//
// Routes live under /api: auth (signup, login, logout), tweets (list, search,
// get, create, update, delete) and the server version. Bearer tokens are
// checked by the auth middleware before any protected handler runs; service
// errors become JSON {"message", "details"} bodies through errorStatusMap.
package http
