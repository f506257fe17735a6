// Package bootstrap assembles the portal.
//
// New performs the one-time startup: it builds the visitor registry and the
// route table, installs middleware, health checks, static assets and error
// pages, and composes them into a single application. Run attaches it to
// the configured address.
//
//	cfg, err := config.Load(path)
//	...
//	portal, err := bootstrap.New(cfg, log)
//	...
//	err = portal.Run(ctx)
package bootstrap
