package constants

const (
	// ContextKeyUserID is used both as the session key and the gin context key
	// holding the authenticated user's ID.
	ContextKeyUserID = "user_id"

	// ContextKeySubjectID holds the parsed :id of the profile being accessed.
	ContextKeySubjectID = "subject_id"

	// ContextKeyRequestID holds the request correlation ID.
	ContextKeyRequestID = "request_id"

	SessionCookieName = "studentboard_session"
	RequestIDHeader   = "X-Request-ID"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Accounts
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// IndexTitle is the heading of the users index view.
const IndexTitle = "Students"
