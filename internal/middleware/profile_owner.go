package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/student-directory-api/internal/constants"
	"github.com/yukikurage/student-directory-api/internal/dto"
	apierrors "github.com/yukikurage/student-directory-api/internal/errors"
)

// RequireProfileOwner lets a request through only when the signed-in user is
// the user named by the :id parameter. Anyone else is redirected to that
// user's read-only profile instead of receiving an error.
func RequireProfileOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		subjectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if userID != subjectID {
			RedirectToProfile(c, subjectID)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySubjectID, subjectID)
		c.Next()
	}
}

// RedirectToProfile sends the client to the read view of subjectID. Reads
// get 302; anything else gets 303 so the follow-up is a GET.
func RedirectToProfile(c *gin.Context, subjectID uint64) {
	status := http.StatusSeeOther
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		status = http.StatusFound
	}
	c.Redirect(status, dto.UserPath(subjectID))
}
