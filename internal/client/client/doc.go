// Package client talks to the gophnotes gRPC API on behalf of the CLI.
//
// GRPCClient owns one connection and remembers the bearer token issued by
// Register or Login; an interceptor attaches it to every later call. Server
// failures come back as errors matching the sentinels of package common
// (errors.Is(err, common.ErrorForbidden) and so on), decoded from the
// google.rpc.ErrorInfo reason, or ErrUnavailable when the server cannot be
// reached.
package client
