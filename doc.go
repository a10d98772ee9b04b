// File: lixenwraith/kvconfig/doc.go

// Package kvconfig loads a flat file of key=value lines into an in-memory
// snapshot and serves string lookups with default-value and missing-key
// semantics.
//
// File format:
//
//	# comment lines and blank lines are ignored
//	host = localhost
//	port=8080
//	url = http://example.com/?a=b
//
// Each line is split on its first '='; key and value are trimmed. A later
// line overwrites an earlier one with the same key. A line without '=' is
// a *MalformedLineError and aborts the load, unless the store is lenient.
//
// Quick Start:
//
//	store := kvconfig.New()
//	if err := store.Init("app.cfg"); err != nil {
//	    log.Printf("config unavailable: %v", err)
//	}
//
//	host, err := store.Get("host")            // ErrUninitialized or *KeyNotFoundError
//	port, err := store.GetOr("port", "8080")  // fallback for absent keys only
//
// Process-wide Store:
//
//	kvconfig.InitConfig("")                    // reads DefaultPath ("app.cfg")
//	host, err := kvconfig.GetConfigValue("host")
//
// Lifecycle:
// A store loads once. The first successful Init commits the snapshot and
// every later Init is a no-op, even with a different path. A failed Init
// leaves the store unloaded, logs the cause, returns it, and may be retried.
// Lookups on an unloaded store always fail with ErrUninitialized, whether or
// not a fallback is supplied.
//
// Thread Safety:
// All Store methods are safe for concurrent use. Parsing happens outside the
// lock and concurrent Init calls commit at most one snapshot.
package kvconfig
