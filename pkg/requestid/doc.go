// Package requestid correlates the log records of one request.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores it in the request context and echoes it in the response. Parameter
// resolution and error handling log with the request context, so a logger
// built with LoggerExtractor tags those records with request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
