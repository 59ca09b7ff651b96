package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	pb "github.com/dmitrijs2005/gophnotes/internal/proto"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	logger      logging.Logger
	dialOptions []grpc.DialOption

	conn   *grpc.ClientConn
	client pb.NotesServiceClient
	health healthpb.HealthClient

	mu    sync.RWMutex
	token string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current token, if any, and bounds the
// call by the configured timeout unless the caller set a deadline already.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.Token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := invoker(ctx, method, req, reply, cc, opts...)
	s.logger.Debug(ctx, "rpc", "method", method, "code", status.Code(err).String(), "duration", time.Since(start))

	return err
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended to
// the defaults (insecure transport and the token interceptor).
func NewGRPCClient(endpointURL string, timeout time.Duration, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout, logger: logger, dialOptions: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewNotesServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// SetToken replaces the bearer token sent with subsequent calls. An empty
// token makes the calls anonymous.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Ping asks the standard health service whether the notes service serves.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.NotesService_ServiceDesc.ServiceName})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

// Register creates an account and keeps the issued token.
func (s *GRPCClient) Register(ctx context.Context, name, email, password string) (*models.AuthPayload, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.SetToken(resp.GetToken())
	return authFromPB(resp), nil
}

// Login authenticates and keeps the issued token.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	s.SetToken(resp.GetToken())
	return authFromPB(resp), nil
}

// Me returns the caller, or a nil user when the call is anonymous.
func (s *GRPCClient) Me(ctx context.Context, withNotes bool) (*models.User, []*models.Note, error) {
	resp, err := s.client.Me(ctx, &pb.MeRequest{WithNotes: withNotes})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return userFromPB(resp.GetUser()), notesFromPB(resp.GetNotes()), nil
}

func (s *GRPCClient) MyNotes(ctx context.Context) ([]*models.Note, error) {
	resp, err := s.client.MyNotes(ctx, &pb.MyNotesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return notesFromPB(resp.GetNotes()), nil
}

func (s *GRPCClient) AllNotes(ctx context.Context) ([]*models.Note, error) {
	resp, err := s.client.AllNotes(ctx, &pb.AllNotesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return notesFromPB(resp.GetNotes()), nil
}

func (s *GRPCClient) GetNote(ctx context.Context, id string) (*models.Note, error) {
	resp, err := s.client.GetNote(ctx, &pb.GetNoteRequest{Id: id})
	if err != nil {
		return nil, mapError(err)
	}
	return noteFromPB(resp.GetNote()), nil
}

func (s *GRPCClient) CreateNote(ctx context.Context, title, description string) (*models.Note, error) {
	resp, err := s.client.CreateNote(ctx, &pb.CreateNoteRequest{Title: title, Description: description})
	if err != nil {
		return nil, mapError(err)
	}
	return noteFromPB(resp.GetNote()), nil
}

// UpdateNote changes the non-nil fields only.
func (s *GRPCClient) UpdateNote(ctx context.Context, id string, title, description *string) (*models.Note, error) {
	resp, err := s.client.UpdateNote(ctx, &pb.UpdateNoteRequest{Id: id, Title: title, Description: description})
	if err != nil {
		return nil, mapError(err)
	}
	return noteFromPB(resp.GetNote()), nil
}

func (s *GRPCClient) DeleteNote(ctx context.Context, id string) (bool, error) {
	resp, err := s.client.DeleteNote(ctx, &pb.DeleteNoteRequest{Id: id})
	if err != nil {
		return false, mapError(err)
	}
	return resp.GetDeleted(), nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]*models.User, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return usersFromPB(resp.GetUsers()), nil
}

func (s *GRPCClient) GetUser(ctx context.Context, id string, withNotes bool) (*models.User, []*models.Note, error) {
	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Id: id, WithNotes: withNotes})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return userFromPB(resp.GetUser()), notesFromPB(resp.GetNotes()), nil
}

func (s *GRPCClient) CreateUser(ctx context.Context, u *models.NewUser) (*models.User, error) {
	resp, err := s.client.CreateUserByAdmin(ctx, &pb.CreateUserRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return userFromPB(resp.GetUser()), nil
}

// UpdateUser sends the non-nil patch fields only.
func (s *GRPCClient) UpdateUser(ctx context.Context, p *models.UserPatch) (*models.User, error) {
	resp, err := s.client.UpdateUser(ctx, &pb.UpdateUserRequest{
		Id:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
		Role:     p.Role,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return userFromPB(resp.GetUser()), nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, id string) (bool, error) {
	resp, err := s.client.DeleteUser(ctx, &pb.DeleteUserRequest{Id: id})
	if err != nil {
		return false, mapError(err)
	}
	return resp.GetDeleted(), nil
}

// mapError turns a gRPC status into a RemoteError wrapping the sentinel named
// by its ErrorInfo reason, falling back to the status code.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}

	sentinel := api.SentinelForCode(st.Code())
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == common.ErrorDomain {
			sentinel = api.SentinelForReason(info.GetReason())
			break
		}
	}

	msg := st.Message()
	switch {
	case msg == "":
		msg = sentinel.Error()
	case !strings.HasPrefix(msg, sentinel.Error()):
		msg = sentinel.Error() + ": " + msg
	}

	return &RemoteError{Sentinel: sentinel, Message: msg}
}
