package users

import (
	"context"
)

// Delete deprovisions a mailbox: any domain-admin grant is revoked first,
// then the mailbox itself is removed.
func (u UsersResourceHandler) Delete(ctx context.Context, id string) error {
	logger := u.logger.With().Str("method", "Delete").Str("id", id).Logger()
	logger.Info().Msg("delete user")

	if err := u.revoker.Revoke(ctx, id); err != nil {
		logger.Error().Err(err).Msg("failed to revoke domain admin")
		return err
	}

	if err := u.mailcow.DeleteMailbox(ctx, id); err != nil {
		logger.Error().Err(err).Msg("failed to delete mailbox")
		return err
	}

	return nil
}
