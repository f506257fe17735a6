// Package health serves liveness and readiness probes.
//
// Liveness answers OK while the process runs. Readiness runs every named
// check in parallel under a shared timeout and answers 503 if any fails.
// Both answer JSON when asked via ?format=json or an Accept header.
package health
