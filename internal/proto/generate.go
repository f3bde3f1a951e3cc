// Package proto holds the generated passport.v1 messages and gRPC bindings.
package proto

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/dmitrijs2005/gopassport/internal/proto --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/gopassport/internal/proto passport/v1/passport.proto
