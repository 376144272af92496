package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/famjamjam/internal/domain/repository"
)

// PostgREST reports failures as "(code) message".
const (
	codeNoRows          = "(PGRST116)"
	codeUniqueViolation = "(23505)"
	codeForeignKey      = "(23503)"
)

func mapError(table string, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, codeNoRows):
		return fmt.Errorf("%s: %w", table, repository.ErrNotFound)
	case strings.HasPrefix(msg, codeUniqueViolation), strings.HasPrefix(msg, codeForeignKey):
		return fmt.Errorf("%s: %w: %s", table, repository.ErrConflict, msg)
	}
	return fmt.Errorf("supabase %s: %w", table, err)
}

// PostgREST calls are synchronous and take no context; honour cancellation
// before issuing one.
func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
