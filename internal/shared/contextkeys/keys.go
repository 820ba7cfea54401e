package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "yogic context key " + string(c)
}

// AdminIDKey is the key for the authenticated admin ID in context.Context
const AdminIDKey = contextKey("adminID")

// AdminUsernameKey is the key for the authenticated admin username in context.Context
const AdminUsernameKey = contextKey("adminUsername")

// RequestIDKey is the key for the request ID in context.Context
const RequestIDKey = contextKey("requestID")

// ComponentKey is the key for the logging component name in context.Context
const ComponentKey = contextKey("component")

// OperationKey is the key for the logging operation name in context.Context
const OperationKey = contextKey("operation")
