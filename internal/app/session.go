package app

import (
	"context"
	"net/http"
)

type sessionKey string

// SessionKeyUserId holds the signed-in user in both the session store and the
// request context.
const SessionKeyUserId = sessionKey("userID")

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextSetUserId(r *http.Request, userId int) *http.Request {
	ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
	return r.WithContext(ctx)
}

// contextGetUserId must only be called behind requireAuthentication.
func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}
