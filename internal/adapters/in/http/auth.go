package http

import (
	"net/http"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/auth/register - creates an account and returns
// a signed access token.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return badRequest(c, err)
	}
	if !role.IsSafe() {
		return c.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "role cannot be self-assigned",
		})
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Username, req.Email, req.Phone, req.Password, role)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return fail(c, err)
	}

	tokenString, err := s.tokens.Generate(userID.String(), req.Username, string(role))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		UserID:   userID.String(),
		Username: req.Username,
		Role:     string(role),
		Token:    tokenString,
	})
}

// Login handles POST /api/auth/login - verifies credentials and returns a
// signed access token.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	unauthorized := func() error {
		return c.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid username or password",
		})
	}

	user, err := s.userRepo.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return unauthorized()
	}
	if err = user.CheckPassword(req.Password); err != nil {
		return unauthorized()
	}

	tokenString, err := s.tokens.Generate(user.ID().String(), user.Username(), string(user.Role()))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, toAuthResponse(user, tokenString))
}
