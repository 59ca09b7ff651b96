package client

import (
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	pb "github.com/dmitrijs2005/gophnotes/internal/proto"
)

func userFromPB(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:        u.GetId(),
		Name:      u.GetName(),
		Email:     u.GetEmail(),
		Role:      u.GetRole(),
		CreatedAt: u.GetCreatedAt(),
		UpdatedAt: u.GetUpdatedAt(),
	}
}

func usersFromPB(in []*pb.User) []*models.User {
	out := make([]*models.User, 0, len(in))
	for _, u := range in {
		out = append(out, userFromPB(u))
	}
	return out
}

func noteFromPB(n *pb.Note) *models.Note {
	if n == nil {
		return nil
	}
	return &models.Note{
		ID:          n.GetId(),
		Title:       n.GetTitle(),
		Description: n.GetDescription(),
		AuthorID:    n.GetAuthorId(),
		Author:      userFromPB(n.GetAuthor()),
		CreatedAt:   n.GetCreatedAt(),
		UpdatedAt:   n.GetUpdatedAt(),
	}
}

func notesFromPB(in []*pb.Note) []*models.Note {
	out := make([]*models.Note, 0, len(in))
	for _, n := range in {
		out = append(out, noteFromPB(n))
	}
	return out
}

func authFromPB(a *pb.AuthPayload) *models.AuthPayload {
	return &models.AuthPayload{Token: a.GetToken(), User: userFromPB(a.GetUser())}
}
