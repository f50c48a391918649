package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/student-directory-api/internal/constants"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
		wantOff   int
	}{
		{"", 1, constants.DefaultPageSize, 0},
		{"?page=3&limit=10", 3, 10, 20},
		{"?page=0&limit=10", 1, 10, 0},
		{"?page=2&limit=1000", 2, constants.DefaultPageSize, constants.DefaultPageSize},
		{"?page=abc&limit=xyz", 1, constants.DefaultPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/api/users"+tt.query, nil)

			params := GetPaginationParams(c)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOff, params.Offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestAvatarURL(t *testing.T) {
	// md5("myemailaddress@example.com")
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?d=identicon&s=80"

	assert.Equal(t, want, AvatarURL("  MyEmailAddress@example.com ", 80))
}

func TestProfileURL(t *testing.T) {
	assert.Equal(t, "http://www.github.com/foobar", ProfileURL("http://www.github.com/foobar", GithubBaseURL))
	assert.Equal(t, "https://www.facebook.com/facebook", ProfileURL("facebook", FacebookBaseURL))
	assert.Equal(t, "https://twitter.com/gopher", ProfileURL("@gopher", TwitterBaseURL))
	assert.Equal(t, "", ProfileURL("  ", TwitterBaseURL))
}
