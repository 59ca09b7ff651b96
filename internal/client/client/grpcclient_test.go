package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	servergrpc "github.com/dmitrijs2005/gophnotes/internal/server/grpc"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * interceptor and error mapping
 *************/

func TestWithAccessToken_ReplacesPrevious(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, "Bearer old", "x-trace", "1")

	ctx = withAccessToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"Bearer new"}, md.Get(common.AuthorizationHeaderName))
	assert.Equal(t, []string{"1"}, md.Get("x-trace"))
}

func TestInterceptor_AttachesTokenAndDeadline(t *testing.T) {
	c := &GRPCClient{timeout: time.Second, logger: logging.Nop()}
	c.SetToken("T1")

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Equal(t, []string{"Bearer T1"}, md.Get(common.AuthorizationHeaderName))
		_, ok := ctx.Deadline()
		assert.True(t, ok, "timeout must be applied")
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/svc/M", nil, nil, nil, invoker))
}

func TestInterceptor_AnonymousKeepsCallerDeadline(t *testing.T) {
	c := &GRPCClient{timeout: time.Hour, logger: logging.Nop()}

	want := time.Now().Add(time.Minute)
	ctx, cancel := context.WithDeadline(context.Background(), want)
	defer cancel()

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Empty(t, md.Get(common.AuthorizationHeaderName))
		got, _ := ctx.Deadline()
		assert.True(t, want.Equal(got))
		return status.Error(codes.NotFound, "x")
	}

	err := c.accessTokenInterceptor(ctx, "/svc/M", nil, nil, nil, invoker)
	assert.Equal(t, codes.NotFound, status.Code(err), "invoker error is returned untouched")
}

func withReason(t *testing.T, code codes.Code, msg, reason string) error {
	t.Helper()
	st, err := status.New(code, msg).WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: common.ErrorDomain})
	require.NoError(t, err)
	return st.Err()
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		wantMsg string
	}{
		{
			name:    "reason wins over code",
			err:     withReason(t, codes.Unauthenticated, "invalid email or password", api.ReasonInvalidCredentials),
			want:    common.ErrorInvalidCredentials,
			wantMsg: "invalid email or password",
		},
		{
			name:    "forbidden",
			err:     withReason(t, codes.PermissionDenied, "forbidden: you can only access your own resources", api.ReasonForbidden),
			want:    common.ErrorForbidden,
			wantMsg: "forbidden: you can only access your own resources",
		},
		{
			name:    "code fallback without details",
			err:     status.Error(codes.NotFound, "gone"),
			want:    common.ErrorNotFound,
			wantMsg: "not found: gone",
		},
		{
			name:    "foreign domain ignored",
			err:     func() error { st, _ := status.New(codes.AlreadyExists, "").WithDetails(&errdetails.ErrorInfo{Reason: api.ReasonNotFound, Domain: "other"}); return st.Err() }(),
			want:    common.ErrorAlreadyExists,
			wantMsg: "already exists",
		},
		{
			name:    "unknown code is internal",
			err:     status.Error(codes.DataLoss, "internal error"),
			want:    common.ErrorInternal,
			wantMsg: "internal error",
		},
		{
			name: "unavailable",
			err:  status.Error(codes.Unavailable, "connection refused"),
			want: ErrUnavailable,
		},
		{
			name: "deadline",
			err:  status.Error(codes.DeadlineExceeded, "too slow"),
			want: ErrUnavailable,
		},
		{
			name: "not a status",
			err:  errors.New("plain"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			require.Error(t, got)
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
			} else {
				assert.Contains(t, got.Error(), "rpc error")
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Error())
			}
		})
	}

	assert.NoError(t, mapError(nil))
}

/*************
 * against a live server over bufconn
 *************/

type harness struct {
	users *services.UserService
	mock  sqlmock.Sqlmock
	dial  grpc.DialOption
}

func startServer(t *testing.T) *harness {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := repomanager.NewInMemoryRepositoryManager()
	tokens := auth.NewTokenService([]byte("client-secret"), time.Hour)
	us := services.NewUserService(repos, auth.NewBcryptHasher(bcrypt.MinCost), tokens, logging.Nop())
	ns := services.NewNoteService(repos, logging.Nop())
	srv := servergrpc.NewGRPCServer("", logging.Nop(), db, repos, auth.NewResolver(tokens), us, ns, true)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &harness{
		users: us,
		mock:  mock,
		dial:  grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	}
}

func (h *harness) newClient(t *testing.T) *GRPCClient {
	t.Helper()
	c, err := NewGRPCClient("passthrough:///bufnet", 5*time.Second, logging.Nop(), h.dial)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGRPCClient_Ping(t *testing.T) {
	h := startServer(t)
	c := h.newClient(t)

	require.NoError(t, c.Ping(context.Background()))
}

func TestGRPCClient_UnreachableServer(t *testing.T) {
	c, err := NewGRPCClient("passthrough:///nowhere", 200*time.Millisecond, nil,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return nil, errors.New("dial refused")
		}))
	require.NoError(t, err)
	defer c.Close()

	err = c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGRPCClient_AuthFlow(t *testing.T) {
	h := startServer(t)
	c := h.newClient(t)
	ctx := context.Background()

	me, _, err := c.Me(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, me, "anonymous caller has no identity")

	p, err := c.Register(ctx, "Alice", "alice@example.com", "alice-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Token)
	assert.Equal(t, p.Token, c.Token(), "register keeps the token")

	me, _, err = c.Me(ctx, false)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, "REGULAR", me.Role)

	_, err = c.Register(ctx, "Again", "alice@example.com", "x")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	other := h.newClient(t)
	_, err = other.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
	assert.Empty(t, other.Token(), "failed login keeps no token")

	_, err = other.Login(ctx, "alice@example.com", "alice-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, other.Token())

	other.SetToken("")
	_, err = other.MyNotes(ctx)
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)
}

func TestGRPCClient_Notes(t *testing.T) {
	h := startServer(t)
	ctx := context.Background()

	alice := h.newClient(t)
	_, err := alice.Register(ctx, "Alice", "alice@example.com", "alice-pw")
	require.NoError(t, err)
	bob := h.newClient(t)
	_, err = bob.Register(ctx, "Bob", "bob@example.com", "bob-pw")
	require.NoError(t, err)

	n, err := alice.CreateNote(ctx, "groceries", "milk")
	require.NoError(t, err)
	assert.Equal(t, "groceries", n.Title)
	require.NotNil(t, n.Author, "notes carry their author")
	assert.Equal(t, "alice@example.com", n.Author.Email)

	_, err = alice.CreateNote(ctx, "", "no title")
	assert.ErrorIs(t, err, common.ErrorValidation)

	mine, err := alice.MyNotes(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	got, err := alice.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "milk", got.Description)

	_, err = bob.GetNote(ctx, n.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = bob.AllNotes(ctx)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	desc := "milk, eggs"
	updated, err := alice.UpdateNote(ctx, n.ID, nil, &desc)
	require.NoError(t, err)
	assert.Equal(t, "groceries", updated.Title)
	assert.Equal(t, desc, updated.Description)

	_, err = alice.GetNote(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	deleted, err := alice.DeleteNote(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = alice.DeleteNote(ctx, n.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGRPCClient_AdminUsers(t *testing.T) {
	h := startServer(t)
	ctx := context.Background()

	_, _, err := h.users.EnsureAdmin(ctx, &reqctx.Request{}, services.RegisterInput{Name: "Admin User", Email: "admin@gmail.com", Password: "admin123"})
	require.NoError(t, err)

	admin := h.newClient(t)
	_, err = admin.Login(ctx, "admin@gmail.com", "admin123")
	require.NoError(t, err)

	u, err := admin.CreateUser(ctx, &models.NewUser{Name: "Carol", Email: "carol@example.com", Password: "carol-pw", Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", u.Role)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	name := "Caroline"
	u, err = admin.UpdateUser(ctx, &models.UserPatch{ID: u.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Caroline", u.Name)

	carol := h.newClient(t)
	_, err = carol.Login(ctx, "carol@example.com", "carol-pw")
	require.NoError(t, err)
	_, err = carol.CreateNote(ctx, "hers", "")
	require.NoError(t, err)

	got, notes, err := admin.GetUser(ctx, u.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Caroline", got.Name)
	assert.Len(t, notes, 1)

	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
	deleted, err := admin.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, h.mock.ExpectationsWereMet())

	_, _, err = admin.GetUser(ctx, u.ID, false)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	regular := h.newClient(t)
	_, err = regular.Register(ctx, "Dave", "dave@example.com", "dave-pw")
	require.NoError(t, err)
	_, err = regular.ListUsers(ctx)
	assert.ErrorIs(t, err, common.ErrorForbidden)
}
