// Package shelfpb holds the generated shelf.v1 protobuf messages and gRPC
// stubs.
package shelfpb

//go:generate protoc -I ../../../../proto --go_out=../../../.. --go_opt=module=github.com/rl1809/shelf-service --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/rl1809/shelf-service shelf/v1/shelf.proto
