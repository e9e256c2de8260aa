package handlers

import (
	stderrors "errors"
	"net/http"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/errors"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new organization with its first admin user
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(req.OrganizationName, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch err {
		case services.ErrEmailTaken:
			return SendError(c, errors.UserEmailTaken)
		}
		if isPasswordPolicyError(err) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toUserProfileResponse(user),
		Message: "Organization registered successfully",
	})
}

// Login authenticates a user and issues a JWT access token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: result.Token,
			TokenType:   "Bearer",
			ExpiresAt:   result.ExpiresAt,
		},
		User: toUserProfileResponse(result.User),
	})
}

// AddMember creates another user in the caller's organization. Admin only.
func (h *AuthHandler) AddMember(c echo.Context) error {
	orgID, err := getOrganizationIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}

	var req dto.AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.AddMember(orgID, req.Email, req.Password, req.FirstName, req.LastName, req.Role)
	if err != nil {
		switch err {
		case services.ErrEmailTaken:
			return SendError(c, errors.UserEmailTaken)
		case services.ErrInvalidRole:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid role"))
		case services.ErrOrganizationMissing:
			return SendError(c, errors.OrganizationNotFound)
		}
		if isPasswordPolicyError(err) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toUserProfileResponse(user),
		Message: "Member added successfully",
	})
}

// isPasswordPolicyError reports whether err is one of the password rules,
// which surface as 400 with the rule text instead of a 500.
func isPasswordPolicyError(err error) bool {
	for _, policyErr := range []error{
		services.ErrPasswordEmpty,
		services.ErrPasswordTooShort,
		services.ErrPasswordTooLong,
		services.ErrPasswordNoLetter,
		services.ErrPasswordNoNumber,
	} {
		if stderrors.Is(err, policyErr) {
			return true
		}
	}
	return false
}

func toUserProfileResponse(user *models.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:             user.ID.String(),
		OrganizationID: user.OrganizationID.String(),
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		CreatedAt:      user.CreatedAt,
	}
}
