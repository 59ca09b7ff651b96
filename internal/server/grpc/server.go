// Package grpc exposes the notes API over gRPC: it resolves the caller once per
// request, hands the typed request context to the services and maps their
// failures to status codes with machine-readable reasons.
package grpc

import (
	"context"
	"database/sql"
	"net"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/logging"
	pb "github.com/dmitrijs2005/gophnotes/internal/proto"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the account use-case surface the handlers depend on.
type UserService interface {
	Me(ctx context.Context, rc *reqctx.Request, withNotes bool) (*models.User, []*models.Note, error)
	Register(ctx context.Context, rc *reqctx.Request, in services.RegisterInput) (*services.AuthPayload, error)
	Login(ctx context.Context, rc *reqctx.Request, email, password string) (*services.AuthPayload, error)
	CreateByAdmin(ctx context.Context, rc *reqctx.Request, in services.CreateUserInput) (*models.User, error)
	Get(ctx context.Context, rc *reqctx.Request, id string, withNotes bool) (*models.User, []*models.Note, error)
	List(ctx context.Context, rc *reqctx.Request) ([]*models.User, error)
	Update(ctx context.Context, rc *reqctx.Request, id string, in services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, rc *reqctx.Request, id string) (bool, error)
}

// NoteService is the note use-case surface the handlers depend on.
type NoteService interface {
	Create(ctx context.Context, rc *reqctx.Request, in services.CreateNoteInput) (*models.Note, error)
	Get(ctx context.Context, rc *reqctx.Request, id string) (*models.Note, error)
	Update(ctx context.Context, rc *reqctx.Request, id string, in services.UpdateNoteInput) (*models.Note, error)
	Delete(ctx context.Context, rc *reqctx.Request, id string) (bool, error)
	ListMine(ctx context.Context, rc *reqctx.Request) ([]*models.Note, error)
	ListAll(ctx context.Context, rc *reqctx.Request) ([]*models.Note, error)
}

// IdentityResolver turns an authorization header into an optional identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, header string, users auth.UserLoader) *models.User
}

type GRPCServer struct {
	pb.UnimplementedNotesServiceServer
	address     string
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    IdentityResolver
	users       UserService
	notes       NoteService
	logger      logging.Logger
	production  bool
}

func NewGRPCServer(a string, l logging.Logger, db *sql.DB, rm repomanager.RepositoryManager,
	r IdentityResolver, us UserService, ns NoteService, production bool) *GRPCServer {
	return &GRPCServer{
		address:     a,
		db:          db,
		repomanager: rm,
		resolver:    r,
		users:       us,
		notes:       ns,
		logger:      l.With("module", "grpc_server"),
		production:  production,
	}
}

// newServer builds the grpc.Server with interceptors, the notes service and
// the standard health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.identityInterceptor, s.loggingInterceptor))

	pb.RegisterNotesServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.NotesService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully. It returns once the server and its stop watcher are both done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	served := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-served:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	err := srv.Serve(lis)
	close(served)
	wg.Wait()

	return err
}
