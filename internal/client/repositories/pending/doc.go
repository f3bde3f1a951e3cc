// Package pending persists check-in attempts made while the device could not
// reach the server. Entries move from unsynced to synced or failed exactly
// once; synced entries are purged after a retention period.
package pending
