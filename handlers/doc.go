// Package handlers serves the session endpoints.
//
//	GET  /api/session           current session as JSON
//	POST /api/session/dispatch  apply a LOGIN or LOGOUT action
//	POST /login                 form login, redirects to /home
//	POST /logout                form logout, redirects to /login
//
// A successful login issues the visitor a fresh cookie token.
package handlers
