package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type createAccountRequest struct {
	Email    string    `json:"email"    validate:"required,email"`
	Password string    `json:"password" validate:"required"`
	Role     user.Role `json:"role"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyEmailRequest struct {
	Code string `json:"code" validate:"required"`
}

type editProfileRequest struct {
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}

func (s *Server) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	if err := s.h.CreateAccount.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(envelope{"userId": cmd.UserID()}))
}

func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	token, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"token": token}))
}

func (s *Server) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyEmailCommand(req.Code)
	if err != nil {
		return err
	}
	if err := s.h.VerifyEmail.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}

func (s *Server) Me(c echo.Context) error {
	return s.profile(c, identityOf(c).ID)
}

func (s *Server) UserProfile(c echo.Context) error {
	id, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}
	return s.profile(c, id)
}

func (s *Server) profile(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetUserProfileQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.UserProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"user": view}))
}

func (s *Server) EditProfile(c echo.Context) error {
	var req editProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewEditProfileCommand(identityOf(c), req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := s.h.EditProfile.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}

func (s *Server) DeleteAccount(c echo.Context) error {
	cmd, err := commands.NewDeleteAccountCommand(identityOf(c))
	if err != nil {
		return err
	}
	if err := s.h.DeleteAccount.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}
