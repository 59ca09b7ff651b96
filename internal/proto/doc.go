// Package proto holds the protobuf messages and gRPC bindings generated from
// proto/gophnotes/v1/notes.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/gophnotes --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/gophnotes gophnotes/v1/notes.proto
