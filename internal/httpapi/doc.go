// Package httpapi is the request/response boundary of the service.
//
// It gates methods (GET plus OPTIONS pre-flight), stamps cross-origin
// headers on every response, wraps results in a JSON envelope, and maps
// classified failures to HTTP statuses. Callers always receive well-formed
// JSON, even on total upstream outage.
package httpapi
