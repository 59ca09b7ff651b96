// Package api holds the error contract shared by the gophnotes server and
// client: which gRPC code and google.rpc.ErrorInfo reason each domain
// sentinel travels as, and how a client maps them back.
package api

import (
	"errors"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"google.golang.org/grpc/codes"
)

// Machine-readable failure reasons reported in google.rpc.ErrorInfo.
const (
	ReasonUnauthenticated    = "UNAUTHENTICATED"
	ReasonInvalidCredentials = "INVALID_CREDENTIALS"
	ReasonForbidden          = "FORBIDDEN"
	ReasonNotFound           = "NOT_FOUND"
	ReasonAlreadyExists      = "ALREADY_EXISTS"
	ReasonInvalidArgument    = "INVALID_ARGUMENT"
	ReasonInternal           = "INTERNAL"
)

type failure struct {
	sentinel error
	code     codes.Code
	reason   string
}

// failures is ordered: the first matching sentinel wins.
var failures = []failure{
	{common.ErrorInvalidCredentials, codes.Unauthenticated, ReasonInvalidCredentials},
	{common.ErrorUnauthenticated, codes.Unauthenticated, ReasonUnauthenticated},
	{common.ErrorForbidden, codes.PermissionDenied, ReasonForbidden},
	{common.ErrorNotFound, codes.NotFound, ReasonNotFound},
	{common.ErrorAlreadyExists, codes.AlreadyExists, ReasonAlreadyExists},
	{common.ErrorValidation, codes.InvalidArgument, ReasonInvalidArgument},
}

// Classify returns the status code and reason for err. Errors matching no
// known sentinel are internal.
func Classify(err error) (codes.Code, string) {
	for _, f := range failures {
		if errors.Is(err, f.sentinel) {
			return f.code, f.reason
		}
	}
	return codes.Internal, ReasonInternal
}

// SentinelForReason maps a reason back to the sentinel it was derived from.
func SentinelForReason(reason string) error {
	for _, f := range failures {
		if f.reason == reason {
			return f.sentinel
		}
	}
	return common.ErrorInternal
}

// SentinelForCode is the fallback when a status carries no ErrorInfo.
func SentinelForCode(code codes.Code) error {
	switch code {
	case codes.Unauthenticated:
		return common.ErrorUnauthenticated
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return common.ErrorValidation
	default:
		return common.ErrorInternal
	}
}
