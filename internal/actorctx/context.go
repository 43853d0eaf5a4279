package actorctx

import "context"

type ctxKey string

const (
	keyActor ctxKey = "actor"
	keyRID   ctxKey = "rid"
)

// WithActor stores the staff member name recorded on audit entries.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, keyActor, actor)
}

// Actor returns the acting staff member if present.
func Actor(ctx context.Context) string {
	v, _ := ctx.Value(keyActor).(string)
	return v
}

// WithRID stores a correlation id for request-scoped log lines.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns the correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}
