package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methubd/clickdesire-ecom-server/app/controllers"
	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

func newUserRouter(users *memUserRepo) *router.Router {
	ctrl := controllers.NewUserController(users)

	r := router.New()
	r.Post("/users", "", ctrl.Register)
	r.Get("/users", "", ctrl.List)
	r.Put("/users/{email}", "", ctrl.SetRole)
	r.Get("/users/admin/{email}", "", ctrl.IsAdmin)
	r.Get("/users/vendor/{email}", "", ctrl.IsVendor)
	return r
}

func TestRegisterStoresUser(t *testing.T) {
	users := newMemUserRepo()
	r := newUserRouter(users)

	rec, _ := doJSON(t, r.Handler(), "POST", "/users", models.User{Email: "a@x.com", Name: "Alia"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := users.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alia", stored.Name)
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	users := newMemUserRepo()
	r := newUserRouter(users)

	rec, _ := doJSON(t, r.Handler(), "POST", "/users", models.User{Email: "a@x.com"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doJSON(t, r.Handler(), "POST", "/users", models.User{Email: "a@x.com"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "user already exists", env.Message)

	all, err := users.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "exactly one user must remain after a duplicate register")
}

func TestRegisterRequiresEmail(t *testing.T) {
	r := newUserRouter(newMemUserRepo())

	rec, _ := doJSON(t, r.Handler(), "POST", "/users", models.User{Name: "no-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetRoleUpserts(t *testing.T) {
	users := newMemUserRepo()
	r := newUserRouter(users)

	// First call creates the user with role admin.
	rec, _ := doJSON(t, r.Handler(), "PUT", "/users/a@x.com", map[string]string{"role": "admin"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	role, err := users.RoleByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	// Second call updates the same record.
	rec, _ = doJSON(t, r.Handler(), "PUT", "/users/a@x.com", map[string]string{"role": "vendor"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	role, err = users.RoleByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "vendor", role)

	all, err := users.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must never duplicate a user")
}

func TestRoleChecks(t *testing.T) {
	users := newMemUserRepo()
	_, err := users.UpsertRole(context.Background(), "root@x.com", "admin")
	require.NoError(t, err)
	_, err = users.UpsertRole(context.Background(), "shop@x.com", "vendor")
	require.NoError(t, err)

	r := newUserRouter(users)

	cases := []struct {
		path string
		want string
	}{
		{"/users/admin/root@x.com", "true"},
		{"/users/admin/shop@x.com", "false"},
		{"/users/admin/ghost@x.com", "false"},
		{"/users/vendor/shop@x.com", "true"},
		{"/users/vendor/root@x.com", "false"},
	}

	for _, tc := range cases {
		rec, env := doJSON(t, r.Handler(), "GET", tc.path, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.Equal(t, tc.want, string(env.Data), tc.path)
	}
}

func TestListUsers(t *testing.T) {
	users := newMemUserRepo()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := users.Create(context.Background(), &models.User{Email: email})
		require.NoError(t, err)
	}

	r := newUserRouter(users)
	rec, env := doJSON(t, r.Handler(), "GET", "/users", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.User
	decodeData(t, env, &got)
	assert.Len(t, got, 3)
}
