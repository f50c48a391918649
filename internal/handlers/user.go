package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/student-directory-api/internal/constants"
	"github.com/yukikurage/student-directory-api/internal/dto"
	apierrors "github.com/yukikurage/student-directory-api/internal/errors"
	"github.com/yukikurage/student-directory-api/internal/middleware"
	"github.com/yukikurage/student-directory-api/internal/services"
	"github.com/yukikurage/student-directory-api/internal/utils"
)

// UserHandler serves the students index and profile pages.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns the students index, most recently active first by default
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	page, err := h.userService.ListUsers(c.Request.Context(), services.ListUsersInput{
		Sort:     c.Query("sort"),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(page.Users, page.Sort, page.Page, page.PageSize, page.Total))
}

// GetUser returns a user's profile. The edit affordance is only present
// on the viewer's own profile.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	subjectID, ok := parseIDParam(c, "id", "Invalid user ID")
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(subjectID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user, userID))
}

// EditUser returns the editable profile fields
// Ownership is enforced by RequireProfileOwner middleware
func (h *UserHandler) EditUser(c *gin.Context) {
	userID, subjectID, ok := ownerAndSubject(c)
	if !ok {
		return
	}

	user, err := h.userService.GetEditableProfile(userID, subjectID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEditProfileDTO(*user))
}

// UpdateUser saves profile changes and sends the client to the profile page
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, subjectID, ok := ownerAndSubject(c)
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		About    *string `json:"about" form:"about" binding:"omitempty,max=2000"`
		Github   *string `json:"github" form:"github" binding:"omitempty,url,max=255"`
		Facebook *string `json:"facebook" form:"facebook" binding:"omitempty,max=100"`
		Twitter  *string `json:"twitter" form:"twitter" binding:"omitempty,max=100"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	_, err := h.userService.UpdateProfile(c.Request.Context(), userID, subjectID, services.UpdateProfileInput{
		About:    req.About,
		Github:   req.Github,
		Facebook: req.Facebook,
		Twitter:  req.Twitter,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, dto.UserPath(subjectID))
}

func ownerAndSubject(c *gin.Context) (uint64, uint64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, 0, false
	}

	subjectID, ok := c.Get(constants.ContextKeySubjectID)
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return 0, 0, false
	}

	return userID, subjectID.(uint64), true
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidSort):
		apierrors.BadRequest(c, "sort must be one of recent, username, newest")
	case errors.Is(err, services.ErrNotProfileOwner):
		subjectID, ok := c.Get(constants.ContextKeySubjectID)
		if !ok {
			apierrors.Forbidden(c, err.Error())
			return
		}
		middleware.RedirectToProfile(c, subjectID.(uint64))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("User request failed")
		apierrors.InternalError(c, "Internal server error")
	}
}
