// Package config resolves service configuration from the process
// environment.
//
// All inputs are read once at startup: the upstream spreadsheet identity
// (SPREADSHEET_ID, SHEET_RANGE), the API credential
// (GOOGLE_SHEETS_API_KEY), and tuning knobs (HTTP_ADDR, CACHE_TTL,
// UPSTREAM_TIMEOUT) with built-in defaults.
package config
