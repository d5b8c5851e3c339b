package users

import (
	"context"

	"github.com/elimity-com/scim"
)

// Patch returns the current resource unchanged. Mailboxes carry no partially
// updatable SCIM attributes; providers that patch users follow up with a full
// sync.
func (u UsersResourceHandler) Patch(ctx context.Context, id string, operations []scim.PatchOperation) (scim.Resource, error) {
	logger := u.logger.With().Str("method", "Patch").Str("id", id).Logger()
	logger.Info().Int("operations", len(operations)).Msg("patch user ignored")

	return u.Get(ctx, id)
}
