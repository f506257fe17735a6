// Package config loads the portal configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. A minimal file:
//
//	address: ":8080"
//	log:
//	  level: info
//	  format: json
//	cookie:
//	  secret: "at-least-32-bytes-of-random-secret"
//	  secure: true
//	session:
//	  idle_ttl: 12h
//	  max_visitors: 100000
//
// Every field has a DEVPORTAL_* variable; Sentry reads SENTRY_DSN,
// SENTRY_ENVIRONMENT and SENTRY_ERRORS_ONLY.
package config
