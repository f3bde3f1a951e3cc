// Package cli provides the interactive passport command-line client.
//
// It wires configuration, the local pending queue, the gRPC client and a
// REPL that keeps working offline: check-ins made without a connection are
// queued and replayed, in capture order, once the server is reachable again.
//
// Commands:
//   - checkin <checkpoint> <lat> <lng> [code=X] [acc=M] [photo=KEY]
//   - sync, pending, failed, dismiss <id>, purge
//   - progress <route>, passport, photo <file>
//   - status, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
