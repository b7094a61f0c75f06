package crmapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginUser is the projection of a user returned to the dashboard on a
// successful login. The password digest never leaves the server.
type loginUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

func (h *Handler) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	user, err := h.verifier.Verify(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		zap.L().Error("login failed", zap.String("email", payload.Email), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Server error during login")
	}
	if user == nil {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	return ok(c, echo.Map{
		"message": "Login successful",
		"user": loginUser{
			ID:       user.UserID,
			Email:    user.Email,
			Name:     user.FullName,
			Role:     user.Role,
			Initials: user.AvatarInitials,
		},
	})
}
