package groups

import (
	"context"
)

// Delete is a no-op success. The bridge cannot resolve the deleted group's
// membership, so there is nothing to project; attribute values linger until
// another group sync overwrites them.
func (g GroupResourceHandler) Delete(ctx context.Context, id string) error {
	logger := g.logger.With().Str("method", "Delete").Str("id", id).Logger()
	logger.Info().Msg("delete group ignored")

	return nil
}
