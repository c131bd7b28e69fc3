// Package cookie provides HTTP cookie management with optional HMAC signing
// and AES-256-GCM encryption.
//
// A Manager is constructed with one or more secrets. The first secret is used
// for new cookies; older secrets are kept so values written before a key
// rotation still verify and decrypt during the transition window.
//
// # Usage
//
//	import "github.com/dmitrymomot/csrfkit/pkg/cookie"
//
//	mgr, err := cookie.New([]string{"shhh-this-secret-is-32-chars-min!"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Plain cookie
//	mgr.Set(w, "theme", "dark", cookie.WithMaxAge(3600))
//
//	// Tamper-evident cookie
//	mgr.SetSigned(w, "uid", "42")
//	uid, err := mgr.GetSigned(r, "uid")
//
//	// Opaque cookie
//	_ = mgr.SetEncrypted(w, "sid", token)
//	token, err := mgr.GetEncrypted(r, "sid")
//
// Defaults are Path=/, HttpOnly and SameSite=Lax; override them per manager
// via New options or per call via Set options.
package cookie
