package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/policy"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/google/uuid"
)

// AuthPayload is returned by Register and Login.
type AuthPayload struct {
	Token string
	User  *models.User
}

// RegisterInput carries self-registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// CreateUserInput carries admin provisioning fields. A nil Role means
// REGULAR.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     *models.Role
}

// UpdateUserInput lists the account fields to change; nil means unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.Role
}

// UserService provides account operations:
// - Register / Login: public, mint tokens
// - Me: the caller's own identity
// - CreateByAdmin / Get / List / Delete: admin only
// - Update: self or admin
type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
	logger      logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, h PasswordHasher, t TokenIssuer, l logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		hasher:      h,
		tokens:      t,
		logger:      l.With("module", "user_service"),
	}
}

// Me returns the caller, or nil for an anonymous request. With withNotes
// the caller's notes are returned too, newest first.
func (s *UserService) Me(ctx context.Context, rc *reqctx.Request, withNotes bool) (*models.User, []*models.Note, error) {
	if rc.Anonymous() {
		return nil, nil, nil
	}

	if !withNotes {
		return rc.Identity, nil, nil
	}

	notes, err := s.repomanager.Notes(rc.DB).ListByAuthor(ctx, rc.Identity.ID)
	if err != nil {
		return nil, nil, storageErr("list notes", err)
	}

	setAuthor(notes, rc.Identity)
	return rc.Identity, notes, nil
}

func (s *UserService) Register(ctx context.Context, rc *reqctx.Request, in RegisterInput) (*AuthPayload, error) {
	if err := validateAccount(in.Name, in.Email, in.Password); err != nil {
		return nil, err
	}

	user, err := s.create(ctx, rc, in.Name, in.Email, in.Password, models.RoleRegular)
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login verifies credentials. Unknown email and wrong password fail with the
// same error after comparable work.
func (s *UserService) Login(ctx context.Context, rc *reqctx.Request, email, password string) (*AuthPayload, error) {
	user, err := s.repomanager.Users(rc.DB).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.getDummyHash())
			return nil, common.ErrorInvalidCredentials
		}
		return nil, storageErr("get user", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issue(user)
}

func (s *UserService) CreateByAdmin(ctx context.Context, rc *reqctx.Request, in CreateUserInput) (*models.User, error) {
	if _, err := policy.RequireAdmin(rc.Identity); err != nil {
		return nil, err
	}

	if err := validateAccount(in.Name, in.Email, in.Password); err != nil {
		return nil, err
	}

	role := models.RoleRegular
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, *in.Role)
		}
		role = *in.Role
	}

	return s.create(ctx, rc, in.Name, in.Email, in.Password, role)
}

// Get returns any identity by id, optionally with its notes. Admin only.
func (s *UserService) Get(ctx context.Context, rc *reqctx.Request, id string, withNotes bool) (*models.User, []*models.Note, error) {
	if _, err := policy.RequireAdmin(rc.Identity); err != nil {
		return nil, nil, err
	}

	user, err := s.repomanager.Users(rc.DB).GetByID(ctx, id)
	if err != nil {
		return nil, nil, storageErr("get user", err)
	}

	if !withNotes {
		return user, nil, nil
	}

	notes, err := s.repomanager.Notes(rc.DB).ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, nil, storageErr("list notes", err)
	}

	setAuthor(notes, user)
	return user, notes, nil
}

// List returns every identity, newest first. Admin only.
func (s *UserService) List(ctx context.Context, rc *reqctx.Request) ([]*models.User, error) {
	if _, err := policy.RequireAdmin(rc.Identity); err != nil {
		return nil, err
	}

	users, err := s.repomanager.Users(rc.DB).List(ctx)
	if err != nil {
		return nil, storageErr("list users", err)
	}

	return users, nil
}

// Update changes an account. Callers may update themselves; other accounts
// need an admin. A role change from a non-admin is ignored.
func (s *UserService) Update(ctx context.Context, rc *reqctx.Request, id string, in UpdateUserInput) (*models.User, error) {
	caller, err := policy.RequireSelfOrAdmin(rc.Identity, id)
	if err != nil {
		return nil, err
	}

	if err := optional("name", in.Name); err != nil {
		return nil, err
	}
	if err := optional("email", in.Email); err != nil {
		return nil, err
	}
	if err := optional("password", in.Password); err != nil {
		return nil, err
	}

	patch := models.UserPatch{Name: in.Name, Email: in.Email}

	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w: %w", common.ErrorInternal, err)
		}
		patch.PasswordHash = &hash
	}

	if in.Role != nil {
		if caller.IsAdmin() {
			if !in.Role.Valid() {
				return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, *in.Role)
			}
			patch.Role = in.Role
		} else {
			s.logger.Debug(ctx, "ignoring role change from non-admin", "user_id", caller.ID)
		}
	}

	repo := s.repomanager.Users(rc.DB)

	if patch.Empty() {
		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, storageErr("get user", err)
		}
		return user, nil
	}

	user, err := repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storageErr("update user", err)
	}

	return user, nil
}

// Delete removes an identity and every note it owns in one transaction.
// Admin only.
func (s *UserService) Delete(ctx context.Context, rc *reqctx.Request, id string) (bool, error) {
	if _, err := policy.RequireAdmin(rc.Identity); err != nil {
		return false, err
	}

	var removed int64
	err := dbx.WithTx(ctx, rc.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Notes(tx).DeleteByAuthor(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return s.repomanager.Users(tx).Delete(ctx, id)
	})
	if err != nil {
		return false, storageErr("delete user", err)
	}

	s.logger.Info(ctx, "user deleted", "user_id", id, "notes_removed", removed)

	return true, nil
}

// EnsureAdmin creates an ADMIN account for email unless one with that email
// already exists, in which case the stored record is left untouched. It
// reports whether a record was created.
func (s *UserService) EnsureAdmin(ctx context.Context, rc *reqctx.Request, in RegisterInput) (*models.User, bool, error) {
	if err := validateAccount(in.Name, in.Email, in.Password); err != nil {
		return nil, false, err
	}

	existing, err := s.repomanager.Users(rc.DB).GetByEmail(ctx, in.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, false, storageErr("get user", err)
	}

	user, err := s.create(ctx, rc, in.Name, in.Email, in.Password, models.RoleAdmin)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func (s *UserService) create(ctx context.Context, rc *reqctx.Request, name, email, password string, role models.Role) (*models.User, error) {
	repo := s.repomanager.Users(rc.DB)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: email is already registered", common.ErrorAlreadyExists)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, storageErr("get user", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w: %w", common.ErrorInternal, err)
	}

	user, err := repo.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, storageErr("create user", err)
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID, "role", string(user.Role))

	return user, nil
}

func (s *UserService) issue(user *models.User) (*AuthPayload, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w: %w", common.ErrorInternal, err)
	}
	return &AuthPayload{Token: token, User: user}, nil
}

// getDummyHash returns a valid hash that no password in use maps to, so an
// unknown email costs one bcrypt comparison like a known one.
func (s *UserService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(uuid.NewString())
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func validateAccount(name, email, password string) error {
	if err := required("name", name); err != nil {
		return err
	}
	if err := required("email", email); err != nil {
		return err
	}
	return required("password", password)
}
