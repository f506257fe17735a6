// Package session holds the authentication state of portal visitors.
//
// A Store owns one Session: a user id plus an auth token and level. The
// three fields change together and only through two operations:
//
//	store := session.NewStore()
//	_ = store.Login("u1", session.Credentials{Token: "tok-abc", Level: 2})
//	store.State().ID() // "u1"
//	store.Logout()
//	store.State().IsAuthenticated() // false
//
// The same operations are reachable by name through Dispatch, which is what
// HTTP handlers use when decoding a JSON action:
//
//	err := store.Dispatch(session.Action{Type: session.ActionLogout})
//
// A Registry maps visitor cookie tokens to stores. MemoryRegistry keeps
// everything in process memory, expires idle visitors and can cap the
// number of visitors with LRU eviction.
package session
