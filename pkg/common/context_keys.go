package common

type contextKey string

// ClientIDContextKey carries the rate limiter's client identifier from the
// middleware into handler logs.
const ClientIDContextKey contextKey = "client_id"

func (k contextKey) String() string {
	return string(k)
}
