package api

import (
	"context"

	"github.com/openblog/backend/models"
)

type keyType string

const currentUserKey keyType = "currentUser"

// ctxWithUser adds the authenticated user (profile preloaded) to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// ctxGetUser retrieves the authenticated user from the context, or nil
func ctxGetUser(ctx context.Context) *models.User {
	if value := ctx.Value(currentUserKey); value != nil {
		if user, ok := value.(*models.User); ok {
			return user
		}
	}
	return nil
}
