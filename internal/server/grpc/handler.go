package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/gophnotes/internal/proto"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"
)

func (s *GRPCServer) Me(ctx context.Context, req *pb.MeRequest) (*pb.MeResponse, error) {
	user, notes, err := s.users.Me(ctx, reqctx.FromContext(ctx), req.GetWithNotes())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.MeResponse{User: toPBUser(user), Notes: toPBNotes(notes)}, nil
}

func (s *GRPCServer) MyNotes(ctx context.Context, req *pb.MyNotesRequest) (*pb.NotesResponse, error) {
	notes, err := s.notes.ListMine(ctx, reqctx.FromContext(ctx))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.NotesResponse{Notes: toPBNotes(notes)}, nil
}

func (s *GRPCServer) GetNote(ctx context.Context, req *pb.GetNoteRequest) (*pb.NoteResponse, error) {
	note, err := s.notes.Get(ctx, reqctx.FromContext(ctx), req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.NoteResponse{Note: toPBNote(note)}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.UsersResponse, error) {
	users, err := s.users.List(ctx, reqctx.FromContext(ctx))
	if err != nil {
		return nil, s.toStatus(err)
	}

	out := make([]*pb.User, 0, len(users))
	for _, u := range users {
		out = append(out, toPBUser(u))
	}
	return &pb.UsersResponse{Users: out}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {
	user, notes, err := s.users.Get(ctx, reqctx.FromContext(ctx), req.GetId(), req.GetWithNotes())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.UserResponse{User: toPBUser(user), Notes: toPBNotes(notes)}, nil
}

func (s *GRPCServer) AllNotes(ctx context.Context, req *pb.AllNotesRequest) (*pb.NotesResponse, error) {
	notes, err := s.notes.ListAll(ctx, reqctx.FromContext(ctx))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.NotesResponse{Notes: toPBNotes(notes)}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthPayload, error) {
	payload, err := s.users.Register(ctx, reqctx.FromContext(ctx), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "user_id", payload.User.ID)
	return &pb.AuthPayload{Token: payload.Token, User: toPBUser(payload.User)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthPayload, error) {
	payload, err := s.users.Login(ctx, reqctx.FromContext(ctx), req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.AuthPayload{Token: payload.Token, User: toPBUser(payload.User)}, nil
}

func (s *GRPCServer) CreateUserByAdmin(ctx context.Context, req *pb.CreateUserRequest) (*pb.UserResponse, error) {
	in := services.CreateUserInput{Name: req.Name, Email: req.Email, Password: req.Password}
	if req.Role != "" {
		role := models.Role(req.Role)
		in.Role = &role
	}

	user, err := s.users.CreateByAdmin(ctx, reqctx.FromContext(ctx), in)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.UserResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UserResponse, error) {
	in := services.UpdateUserInput{Name: req.Name, Email: req.Email, Password: req.Password}
	if req.Role != nil {
		role := models.Role(*req.Role)
		in.Role = &role
	}

	user, err := s.users.Update(ctx, reqctx.FromContext(ctx), req.GetId(), in)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.UserResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteResponse, error) {
	ok, err := s.users.Delete(ctx, reqctx.FromContext(ctx), req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.DeleteResponse{Deleted: ok}, nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *pb.CreateNoteRequest) (*pb.NoteResponse, error) {
	note, err := s.notes.Create(ctx, reqctx.FromContext(ctx), services.CreateNoteInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.NoteResponse{Note: toPBNote(note)}, nil
}

func (s *GRPCServer) UpdateNote(ctx context.Context, req *pb.UpdateNoteRequest) (*pb.NoteResponse, error) {
	note, err := s.notes.Update(ctx, reqctx.FromContext(ctx), req.GetId(), services.UpdateNoteInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.NoteResponse{Note: toPBNote(note)}, nil
}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *pb.DeleteNoteRequest) (*pb.DeleteResponse, error) {
	ok, err := s.notes.Delete(ctx, reqctx.FromContext(ctx), req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.DeleteResponse{Deleted: ok}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// toPBUser drops the password hash.
func toPBUser(u *models.User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func toPBNote(n *models.Note) *pb.Note {
	if n == nil {
		return nil
	}
	return &pb.Note{
		Id:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		AuthorId:    n.AuthorID,
		Author:      toPBUser(n.Author),
		CreatedAt:   formatTime(n.CreatedAt),
		UpdatedAt:   formatTime(n.UpdatedAt),
	}
}

func toPBNotes(notes []*models.Note) []*pb.Note {
	if notes == nil {
		return nil
	}
	out := make([]*pb.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, toPBNote(n))
	}
	return out
}
