// Package session provides server-side session management with pluggable
// storage back-ends and transports.
//
// A Manager orchestrates the session life-cycle. It relies on a Transport to
// extract / set the session token on every request and on a Store to persist
// session state. Concurrent in-memory and Redis-backed stores ship out of the
// box; any datastore satisfying the Store interface can be plugged in.
//
//	┌────────┐   token   ┌────────────┐
//	│ Client │ ────────► │  Transport │
//	└────────┘           └────────────┘
//	       ▲                   │
//	       │                   ▼
//	┌─────────────────────────────────┐
//	│            Manager              │
//	└─────────────────────────────────┘
//	       │   CRUD / TTL
//	       ▼
//	┌────────┐
//	│ Store  │ (memory, redis)
//	└────────┘
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/csrfkit/pkg/cookie"
//	    "github.com/dmitrymomot/csrfkit/pkg/session"
//	)
//
//	cookieMgr, _ := cookie.New([]string{"secret-key-of-at-least-32-chars!"})
//	manager := session.New(
//	    session.WithCookieManager(cookieMgr), // default cookie transport
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := manager.Ensure(r.Context(), w, r)
//	    sess.Set("foo", "bar")
//	    _ = manager.Update(r.Context(), sess)
//	}
//
// Authenticate regenerates the session token when a session is bound to a
// user, so tokens issued before login stop working. Callers pairing sessions
// with CSRF protection should rotate the CSRF secret at the same point.
package session
