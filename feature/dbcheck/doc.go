// Package dbcheck verifies that the configured MongoDB is reachable and writable.
//
// Run masks the credentials in the connection string, connects, pings the
// primary, inserts a throwaway ProbeDocument and deletes it again. Failures
// are classified from the driver's error text into connection-refused,
// authentication and host-not-found categories, each with remediation hints.
//
// Whatever happens after the client is opened, it is disconnected exactly
// once before Run returns.
//
// # States
//
//	Idle → ConfigLoaded → Connected → RecordWritten → RecordDeleted → Disconnected
//	Idle → ConfigLoaded → ConnectFailed → Disconnected
//	Idle → ConfigMissing → Aborted
package dbcheck
