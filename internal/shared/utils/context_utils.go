package utils

import (
	"context"
	"errors"

	"yogic-backend/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrAdminIDNotFound        = errors.New("adminID not found in context")
	ErrAdminIDNotString       = errors.New("adminID in context is not a string")
	ErrAdminUsernameNotFound  = errors.New("adminUsername not found in context")
	ErrAdminUsernameNotString = errors.New("adminUsername in context is not a string")
	ErrRequestIDNotFound      = errors.New("requestID not found in context")
	ErrRequestIDNotString     = errors.New("requestID in context is not a string")
)

// GetAdminIDFromContext retrieves the authenticated admin ID from the context.
// It returns the admin ID and an error if the ID is not found or is not a string.
func GetAdminIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.AdminIDKey)
	if val == nil {
		return "", ErrAdminIDNotFound
	}
	adminID, ok := val.(string)
	if !ok {
		return "", ErrAdminIDNotString
	}
	return adminID, nil
}

// GetAdminUsernameFromContext retrieves the authenticated admin username from the context.
func GetAdminUsernameFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.AdminUsernameKey)
	if val == nil {
		return "", ErrAdminUsernameNotFound
	}
	username, ok := val.(string)
	if !ok {
		return "", ErrAdminUsernameNotString
	}
	return username, nil
}

// GetRequestIDFromContext retrieves the request ID from the context.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}
