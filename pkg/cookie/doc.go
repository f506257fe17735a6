// Package cookie reads and writes the visitor token cookie.
//
// A Manager is bound to one cookie name. Without a secret the token is
// stored as is; with a 32+ byte secret it is HMAC-SHA256 signed and Read
// rejects tampered values with [ErrBadSig]:
//
//	m := cookie.New(
//		cookie.WithName("__portal"),
//		cookie.WithSecret(os.Getenv("DEVPORTAL_COOKIE_SECRET")),
//		cookie.WithSecure(true),
//	)
//	m.Write(w, token)
//	token, err := m.Read(r)
//	m.Clear(w)
package cookie
