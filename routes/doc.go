// Package routes holds the portal's route table.
//
// The table is a fixed, ordered list of (path, name, page) entries:
//
//	/account  Account
//	/device   Device
//	/profile  Profile
//	/home     Home
//	/login    Login
//
// Paths match exactly; "/", "/home/" and every other path fall through to
// NotFound, which answers 404 and links to /login.
package routes
