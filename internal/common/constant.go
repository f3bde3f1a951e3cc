// Package common contains shared constants and sentinel errors used across
// passport components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MemoryDSN selects the in-process store instead of PostgreSQL.
const MemoryDSN = "memory"
