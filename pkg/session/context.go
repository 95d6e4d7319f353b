package session

import "context"

type dataContextKey struct{}

// WithData adds session data to the context
func WithData(ctx context.Context, data *Data) context.Context {
	return context.WithValue(ctx, dataContextKey{}, data)
}

// FromContext retrieves session data from the context
func FromContext(ctx context.Context) (*Data, bool) {
	data, ok := ctx.Value(dataContextKey{}).(*Data)
	return data, ok && data != nil
}

// MustFromContext retrieves session data from the context or panics
func MustFromContext(ctx context.Context) *Data {
	data, ok := FromContext(ctx)
	if !ok {
		panic("session: data not found in context")
	}
	return data
}
