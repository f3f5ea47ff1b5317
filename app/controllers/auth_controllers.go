package controllers

import (
	"net/http"

	"github.com/methubd/clickdesire-ecom-server/pkg/auth"
	"github.com/methubd/clickdesire-ecom-server/pkg/bind"
	"github.com/methubd/clickdesire-ecom-server/pkg/response"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Issue signs the request body as token claims. The payload is
// caller-controlled; typically it carries the account email.
func (c *AuthController) Issue(w http.ResponseWriter, r *http.Request) {
	var claims map[string]interface{}
	if err := bind.JSON(r, &claims); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := auth.IssueToken(claims)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.Success(w, map[string]string{"token": token})
}
