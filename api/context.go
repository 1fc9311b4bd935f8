package api

import (
	"context"
	"errors"
)

type keyType string

const usernameKey keyType = "username"

// ctxWithUsername adds the authenticated admin username to the context
func ctxWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// ctxGetUsername retrieves the authenticated admin username from the context
func ctxGetUsername(ctx context.Context) (string, error) {
	value := ctx.Value(usernameKey)
	if value == nil {
		return "", errors.New("username not found in context")
	}
	asString, ok := value.(string)
	if !ok {
		return "", errors.New("username is not of type `string`")
	}
	return asString, nil
}
