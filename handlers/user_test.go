package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserService implements user.UserService on an in-memory role map.
type fakeUserService struct {
	roles    map[string]string
	promoted []string
}

func (f *fakeUserService) SignIn(u *models.User) (string, error) {
	if _, ok := f.roles[u.Email]; !ok {
		f.roles[u.Email] = models.RoleUser
	}
	return utils.GenerateToken(u.Email, time.Hour)
}

func (f *fakeUserService) ResolveRole(email string) (string, error) {
	role, ok := f.roles[email]
	if !ok {
		return "", user.ErrUserNotFound
	}
	return role, nil
}

func (f *fakeUserService) IsAdmin(email string) (bool, error) {
	return f.roles[email] == models.RoleAdmin, nil
}

func (f *fakeUserService) Promote(email string) error {
	if _, ok := f.roles[email]; !ok {
		return user.ErrUserNotFound
	}
	f.roles[email] = models.RoleAdmin
	f.promoted = append(f.promoted, email)
	return nil
}

func (f *fakeUserService) GetAllUsers() ([]models.User, error) {
	var out []models.User
	for email, role := range f.roles {
		out = append(out, models.User{Email: email, Role: role})
	}
	return out, nil
}

func newUserRouter(svc user.UserService) *gin.Engine {
	h := NewUserHandler(svc)
	r := gin.New()
	r.PUT("/user/:email", h.UpsertUserHandler)
	r.GET("/admin/:email", h.CheckAdminHandler)
	r.GET("/user", middleware.AuthGuard(), h.GetAllUsersHandler)
	r.PUT("/user/admin/:email",
		middleware.AuthGuard(),
		middleware.AdminGuard(svc),
		h.PromoteUserHandler,
	)
	return r
}

func TestUpsertUserIssuesToken(t *testing.T) {
	svc := &fakeUserService{roles: map[string]string{}}
	r := newUserRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/user/alice@x.com", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
	assert.Equal(t, models.RoleUser, svc.roles["alice@x.com"])
}

func TestCheckAdmin(t *testing.T) {
	svc := &fakeUserService{roles: map[string]string{"root@x.com": models.RoleAdmin}}
	r := newUserRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/root@x.com", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin": true}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/nobody@x.com", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin": false}`, rec.Body.String())
}

func TestListUsersRequiresAuth(t *testing.T) {
	r := newUserRouter(&fakeUserService{roles: map[string]string{}})

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPromoteByAdmin(t *testing.T) {
	svc := &fakeUserService{roles: map[string]string{
		"root@x.com": models.RoleAdmin,
		"bob@x.com":  models.RoleUser,
	}}
	r := newUserRouter(svc)
	token, err := utils.GenerateToken("root@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/user/admin/bob@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, svc.roles["bob@x.com"])
}

func TestPromoteByNonAdminForbidden(t *testing.T) {
	svc := &fakeUserService{roles: map[string]string{
		"bob@x.com":   models.RoleUser,
		"carol@x.com": models.RoleUser,
	}}
	r := newUserRouter(svc)
	token, err := utils.GenerateToken("bob@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/user/admin/carol@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, svc.promoted, "promotion must not run for a non-admin caller")
}

func TestPromoteMissingTargetNotFound(t *testing.T) {
	svc := &fakeUserService{roles: map[string]string{"root@x.com": models.RoleAdmin}}
	r := newUserRouter(svc)
	token, err := utils.GenerateToken("root@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/user/admin/ghost@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, svc.roles, "ghost@x.com")
}
