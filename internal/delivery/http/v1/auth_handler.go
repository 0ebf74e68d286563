package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the public identity routes
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, authLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	users := public.Group("/user")
	{
		users.POST("/register", handler.Register)
		users.POST("/login", authLimiter, handler.Login)
		users.POST("/forgot-password", authLimiter, handler.ForgotPassword)
		users.POST("/reset-password", authLimiter, handler.ResetPassword)
	}
}

type RegisterRequest struct {
	Username  string   `json:"username" binding:"required,min=3,max=30"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	FirstName string   `json:"first_name" binding:"max=30"`
	LastName  string   `json:"last_name" binding:"max=30"`
	Gender    string   `json:"gender" binding:"max=18"`
	Mobile    string   `json:"mobile" binding:"omitempty,valid_phone"`
	Location  string   `json:"location" binding:"max=100"`
	UserTitle string   `json:"user_title" binding:"max=30"`
	Bio       string   `json:"bio" binding:"max=500"`
	Skills    []string `json:"skills" binding:"omitempty,dive,max=100"`
	Linkedin  string   `json:"linkedin" binding:"omitempty,url,max=500"`
	Github    string   `json:"github" binding:"omitempty,url,max=500"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user account. Username and email must be unique.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration details"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Router       /user/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	user := &domain.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Mobile:    req.Mobile,
		Location:  req.Location,
		UserTitle: req.UserTitle,
		Bio:       req.Bio,
		Skills:    req.Skills,
		Linkedin:  req.Linkedin,
		Github:    req.Github,
	}

	created, err := h.authUC.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", created)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username and password, returns a bearer token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	accessToken, user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": accessToken,
		"user":  user,
	})
}

type ForgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary      Start a password reset
// @Description  Issues a short-lived reset token when the username and email
// @Description  pair matches an account. The token is the possession proof
// @Description  required by the reset endpoint.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      ForgotPasswordRequest  true  "Account identifiers"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /user/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	resetToken, err := h.authUC.ForgotPassword(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	// Delivery of the token (email) is an external concern; the token is
	// returned here and the mail relay is expected to sit in front.
	response.Success(c, http.StatusOK, "Password reset token issued", gin.H{
		"reset_token": resetToken,
	})
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ResetPassword godoc
// @Summary      Complete a password reset
// @Description  Replaces the account credential when a valid reset token is presented
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "Reset token and new password"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /user/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated", nil)
}

// firstValidationMessage turns a binding error into a single user-facing message
func firstValidationMessage(err error) string {
	msgs := validation.FormatValidationErrors(err)
	if len(msgs) == 0 {
		return "Invalid request body"
	}
	return msgs[0]
}
