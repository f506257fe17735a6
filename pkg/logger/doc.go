// Package logger builds the portal's slog logger.
//
// Output goes to a writer (stdout in production) as JSON or text. Context
// extractors add request-scoped attributes such as the request id to every
// record logged with a context. When a Sentry DSN is configured, warnings
// and errors are also forwarded to Sentry; errors become Sentry issues.
//
//	log, err := logger.New(logger.Config{Level: "info", Format: "json"}, os.Stdout,
//	    middlewares.RequestIDExtractor(),
//	)
//
// Without a DSN the logger never talks to the network.
package logger
