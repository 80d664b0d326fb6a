// Package sheets implements the authenticated client for the Google Sheets
// values API.
//
// The client makes exactly one outbound call per invocation and classifies
// failures into a small taxonomy: missing credentials ([ConfigError]),
// permission problems, addressing problems, and transient conditions
// ([UpstreamError] with a [Kind]). The HTTP client is held in a field so
// tests can redirect calls to local httptest servers.
package sheets
