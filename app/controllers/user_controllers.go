package controllers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/methubd/clickdesire-ecom-server/app/models"
	"github.com/methubd/clickdesire-ecom-server/app/repositories"
	"github.com/methubd/clickdesire-ecom-server/pkg/bind"
	"github.com/methubd/clickdesire-ecom-server/pkg/response"
	"github.com/methubd/clickdesire-ecom-server/pkg/router"
)

type UserController struct {
	users repositories.UserRepository
}

func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// Register stores a new user. Registering an email that already exists is an
// explicit 409 so clients get a testable contract instead of a hung request.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := bind.JSON(r, &user); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if user.Email == "" {
		response.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	_, err := c.users.FindByEmail(r.Context(), user.Email)
	if err == nil {
		response.Conflict(w, "user already exists")
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	result, err := c.users.Create(r.Context(), &user)
	if err != nil {
		// The unique index catches the race between lookup and insert.
		if mongo.IsDuplicateKeyError(err) {
			response.Conflict(w, "user already exists")
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not create user")
		return
	}

	response.Success(w, result)
}

// List returns every user. Reachable only through RequireAuth + RequireAdmin.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list users")
		return
	}
	response.Success(w, users)
}

// SetRole upserts the role on the user at the path email.
func (c *UserController) SetRole(w http.ResponseWriter, r *http.Request) {
	email := router.Param(r, "email")

	var body struct {
		Role string `json:"role"`
	}
	if err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.users.UpsertRole(r.Context(), email, body.Role)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update role")
		return
	}
	response.Success(w, result)
}

// IsAdmin reports whether the user at the path email has role "admin".
func (c *UserController) IsAdmin(w http.ResponseWriter, r *http.Request) {
	c.hasRole(w, r, models.RoleAdmin)
}

// IsVendor reports whether the user at the path email has role "vendor".
func (c *UserController) IsVendor(w http.ResponseWriter, r *http.Request) {
	c.hasRole(w, r, models.RoleVendor)
}

func (c *UserController) hasRole(w http.ResponseWriter, r *http.Request, want string) {
	email := router.Param(r, "email")

	role, err := c.users.RoleByEmail(r.Context(), email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	response.Success(w, role == want)
}
