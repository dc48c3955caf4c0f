package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	USER = MiddleWareContextKey("user") // The context value is an auth.User.
)
