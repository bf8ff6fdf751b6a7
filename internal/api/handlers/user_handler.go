package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/linskybing/residence-hub/pkg/response"
	"github.com/linskybing/residence-hub/pkg/utils"
)

type UserHandler struct {
	svc   *application.UserService
	audit repository.AuditRepo
}

func NewUserHandler(svc *application.UserService, audit repository.AuditRepo) *UserHandler {
	return &UserHandler{svc: svc, audit: audit}
}

// Register godoc
// @Summary Resident registration
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body user.CreateUserInput true "Registration info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if !bindInput(c, &input) {
		return
	}

	usr, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "register", "user", strconv.FormatUint(uint64(usr.UID), 10), nil, usr, "Resident registered", h.audit)
	c.JSON(http.StatusCreated, usr)
}

// Login godoc
// @Summary Resident login
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindInput(c, &input) {
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Email:    usr.Email,
		FullName: usr.DisplayName(),
		Role:     usr.Role,
		IsAdmin:  usr.Role == config.RoleAdmin,
	})
}

// Logout godoc
// @Summary Resident logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// AuthStatus returns the status of the caller's token.
func (h *UserHandler) AuthStatus(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "valid", "user_id": claims.UserID, "is_admin": claims.IsAdmin})
}

// GetUsers godoc
// @Summary List residents
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Items per page (default: 50, max: 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} user.User
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.List(utils.ParseQueryIntParam(c, "limit", 50), utils.ParseQueryIntParam(c, "offset", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary Get resident by ID
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}

	usr, err := h.svc.FindByID(id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUser godoc
// @Summary Update resident profile
// @Description Partially update flat number, full name, profile picture, password or (admins only) role.
// @Tags users
// @Security BearerAuth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to update"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Bad request error"
// @Failure 401 {object} response.ErrorResponse "Wrong or missing old password"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}

	var input user.UpdateUserInput
	if !bindInput(c, &input) {
		return
	}

	updated, err := h.svc.Update(utils.ActorFromContext(c), id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrMissingOldPassword), errors.Is(err, application.ErrIncorrectPassword):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "update", "user", strconv.FormatUint(uint64(id), 10), nil, updated, "Profile updated", h.audit)
	c.JSON(http.StatusOK, updated)
}
