// Package middlewares provides the HTTP middleware the portal runs on every request.
//
// # Request ID
//
// RequestID assigns each request an ID, reusing X-Request-ID or
// X-Correlation-ID from upstream when present. Pair it with
// RequestIDExtractor so every log line carries request_id:
//
//	log, _ := logger.New(cfg.Log, os.Stdout, middlewares.RequestIDExtractor())
//	app := devportal.New(
//	    devportal.WithLogger(log),
//	    devportal.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Access Log
//
// AccessLog writes one record per request with method, path, status, size
// and duration:
//
//	devportal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog(middlewares.WithSkipPaths("/health", "/static")),
//	)
//
// # Recover
//
// Recover converts panics into a *PanicError returned to the ErrorHandler:
//
//	devportal.WithErrorHandler(func(c devportal.Context, err error) error {
//	    if middlewares.IsPanicError(err) {
//	        return c.String(http.StatusInternalServerError, "Internal Server Error")
//	    }
//	    return c.String(http.StatusInternalServerError, err.Error())
//	})
package middlewares
