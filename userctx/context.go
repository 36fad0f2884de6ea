package userctx

import "context"

// Context key type
type contextKey string

const staffIDKey contextKey = "staff_id"
const merchantIDKey contextKey = "merchant_id"

// SetStaffID adds the signed-in staff ID to request context
func SetStaffID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, staffIDKey, id)
}

// GetStaffID retrieves the staff ID from request context
func GetStaffID(ctx context.Context) string {
	if staffID := ctx.Value(staffIDKey); staffID != nil {
		if id, ok := staffID.(string); ok {
			return id
		}
	}
	return ""
}

// SetMerchantID adds the merchant the staff signed in for to request context
func SetMerchantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, merchantIDKey, id)
}

// GetMerchantID retrieves the merchant ID from request context
func GetMerchantID(ctx context.Context) string {
	id, ok := ctx.Value(merchantIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
