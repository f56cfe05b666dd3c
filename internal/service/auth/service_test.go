package auth

import (
	"context"
	"strconv"
	"testing"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/auth"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/user"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	u.IsActive = true
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestService() (auth.AuthService, *fakeUserRepo) {
	users := &fakeUserRepo{users: map[string]user.User{}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Ana", PositionID: "pos-1", IsActive: true},
	}}
	jwtSvc := jwt.NewJWTService("test-secret-key", "1h", "24h")
	return NewAuthService(users, employees, jwtSvc), users
}

func registerTestUser(t *testing.T, svc auth.AuthService) auth.UserResponse {
	t.Helper()
	created, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "ana@example.com",
		Password: "correct-horse",
		Role:     "admin",
	})
	require.NoError(t, err)
	return created
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	svc, users := newTestService()

	created := registerTestUser(t, svc)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, "admin", created.Role)

	stored := users.users[created.ID]
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	registerTestUser(t, svc)
	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "ana@example.com",
		Password: "another-pass",
		Role:     "staff",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_UnknownEmployeeReference(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	ghost := "emp-ghost"
	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:      "ben@example.com",
		Password:   "long-enough",
		Role:       "staff",
		EmployeeID: &ghost,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLogin_IssuesBothTokens(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	registerTestUser(t, svc)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	// An unknown email is indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()
	registerTestUser(t, svc)

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// Rotation revoked the old refresh token: replaying it fails.
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// The rotated token still works.
	_, err = svc.Refresh(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()
	registerTestUser(t, svc)

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()
	registerTestUser(t, svc)

	tokens, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLogout_EmptyToken(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
