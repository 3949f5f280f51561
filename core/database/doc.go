// Package database handles the MongoDB connection used by the test-db command.
//
// It wraps the official MongoDB Go driver behind the small Client interface,
// which makes the connectivity check testable with the mock in
// core/database/mocks.
//
// # Open
//
// Open builds a client from the connection string. The driver connects lazily,
// so the caller is expected to Ping before doing any work; a failed Ping is the
// usual place where refused connections, authentication failures and DNS
// errors surface.
//
// # Usage
//
//	client, err := database.Open(ctx, cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(ctx)
//	if err := client.Ping(ctx); err != nil {
//	    return err
//	}
package database
