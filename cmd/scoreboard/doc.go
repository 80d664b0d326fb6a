// Scoreboard is a small HTTP service that proxies a Google Sheets range.
//
// It caches upstream reads for a fixed TTL, deduplicates concurrent fetches
// so the rate-limited Sheets API sees at most one in-flight call, and falls
// back to stale data when the sheet is unreachable.
//
// Usage:
//
//	scoreboard serve     # start the HTTP server (configured via environment)
//	scoreboard version   # print the version
//
// Configuration: SPREADSHEET_ID, SHEET_RANGE, GOOGLE_SHEETS_API_KEY,
// HTTP_ADDR, CACHE_TTL, UPSTREAM_TIMEOUT.
package main
