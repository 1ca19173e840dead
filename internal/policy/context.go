package policy

import (
	"context"
)

type principalKey struct{}

// PrincipalFrom достаёт принципала из контекста запроса.
// Для анонимного вызывающего возвращается нулевой Principal.
func PrincipalFrom(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}

// WithPrincipal кладёт принципала в контекст. Используется auth-middleware
// и тестами обработчиков.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}
