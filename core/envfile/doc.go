// Package envfile reads the local configuration record shared by the setup
// and test-db commands.
//
// The record lives in a single file, .env.local, in the working directory.
// It is a flat list of KEY=VALUE lines. Blank lines and lines starting with
// '#' are ignored, as are lines without an '=' or with an empty key.
//
// # Usage
//
//	rec, found, err := envfile.Load(envfile.Path("."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	uri, ok := rec.Get(envfile.KeyMongoURI)
//
// Parsing never touches the process environment; callers decide how the
// record is merged with it (see core/config).
package envfile
