// Package client contains the device-side building blocks for talking to the
// passport server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Ping,
//     CheckIn, GetProgress, GetPassport and PresignPhotoUpload.
//  2. A gRPC implementation (see GRPCClient) that injects the access token
//     via an interceptor, bounds every call with a timeout and maps gRPC
//     status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite queue database and applies the embedded goose migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors matched with
// errors.Is: ErrUnavailable (transient), ErrUnauthorized and
// ErrInvalidRequest (terminal). Check-in rejections are *passport.CheckinError.
package client
