package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/auth"
	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

type UserTokenAuth struct {
	auth auth.UserManager
}

func NewUserTokenAuth(auth auth.UserManager) *UserTokenAuth {
	return &UserTokenAuth{
		auth: auth,
	}
}

func (a *UserTokenAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := getBearerToken(r)
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("missing token"))
			return
		}

		ts := time.Now().Unix()
		user, err := a.auth.TokenAuthorization(ctx, ts, token)
		if errors.Is(err, model.ErrUserError) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(err.Error()))
			return
		} else if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(fmt.Sprintf("Internal server error: %s", err.Error())))
			return
		}

		ctx = context.WithValue(ctx, USER, user)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func getBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.Split(h, "Bearer")
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
