// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it is short and
// made of letters, digits, '-' or '_'; otherwise it generates a UUIDv4. The id
// is stored in the request context and echoed in the response header.
// LogExtractor plugs the id into loggers built with pkg/logger.
package requestid
