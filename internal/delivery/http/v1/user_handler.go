package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

// NewUserHandler registers the authenticated profile routes
func NewUserHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &UserHandler{authUC: authUC}

	users := protected.Group("/user")
	{
		users.GET("/me", handler.Me)
		users.PUT("/me", handler.UpdateMe)
		users.GET("/search", handler.Search)
	}
}

// Me godoc
// @Summary      Get own profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /user/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.GetProfile(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", user)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Description  Updates profile fields. Username, email, and role cannot be
// @Description  changed through this endpoint.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Router       /user/me [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), callerID, &update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", user)
}

// Search godoc
// @Summary      Search user profiles
// @Description  Case-insensitive substring match on username and email.
// @Description  Non-admin callers never see admin profiles or themselves.
// @Tags         user
// @Produce      json
// @Param        q    query     string  true  "Search query"
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Failure      404  {object}  response.Response
// @Router       /user/search [get]
// @Security     BearerAuth
func (h *UserHandler) Search(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))
	callerRole := c.GetString(string(domain.KeyUserRole))

	users, err := h.authUC.SearchProfiles(c.Request.Context(), callerID, callerRole, c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profiles retrieved", users)
}
