package security

import "context"

// Repository is the append-only persistence port for security Events.
//
//go:generate mockgen --destination=../../../gen/mock/security/security_mock.go --package=mock . Repository
type Repository interface {
	// Append persists event synchronously; failures propagate to the caller.
	Append(ctx context.Context, event *Event) error
	// AppendAsync persists event on a best-effort basis; it never returns an
	// error to the caller, as audit failure is its own observable (see C7).
	AppendAsync(ctx context.Context, event *Event)
}
