package grpc

import (
	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a service error into a gRPC status error carrying an
// ErrorInfo reason. Internal causes are hidden in production.
func (s *GRPCServer) toStatus(err error) error {
	if err == nil {
		return nil
	}

	code, reason := api.Classify(err)

	msg := err.Error()
	if code == codes.Internal && s.production {
		msg = common.ErrorInternal.Error()
	}

	st := status.New(code, msg)
	withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: common.ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}

	return withInfo.Err()
}
