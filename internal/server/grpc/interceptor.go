package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// identityInterceptor resolves the caller and attaches the request context.
// It never rejects a call: anonymous callers reach the handler and the
// services decide.
func (s *GRPCServer) identityInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AuthorizationHeaderName)
		if len(values) > 0 {
			header = values[0]
		}
	}

	rc := &reqctx.Request{DB: s.db}
	if header != "" {
		rc.Identity = s.resolver.Resolve(ctx, header, s.repomanager.Users(s.db))
	}

	return handler(reqctx.WithRequest(ctx, rc), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	}
	if rc := reqctx.FromContext(ctx); !rc.Anonymous() {
		args = append(args, "user_id", rc.Identity.ID)
	}

	if code == codes.Internal {
		s.logger.Error(ctx, "rpc failed", append(args, "error", err.Error())...)
	} else {
		s.logger.Info(ctx, "rpc", args...)
	}

	return resp, err
}
