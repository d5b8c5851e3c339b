package users

import (
	"context"
	"net/http"

	"github.com/elimity-com/scim"
	serrors "github.com/elimity-com/scim/errors"
	"github.com/elimity-com/scim/optional"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
)

// Replace handles the identity provider's full-sync update. The mailbox is
// re-provisioned; a downstream conflict means it already exists and the sync
// is treated as a no-op success.
func (u UsersResourceHandler) Replace(ctx context.Context, id string, attributes scim.ResourceAttributes) (scim.Resource, error) {
	logger := u.logger.With().Str("method", "Replace").Str("id", id).Logger()
	logger.Info().Msg("replace user")

	user, err := u.convertAttributesToUser(attributes, logger)
	if err != nil {
		return scim.Resource{}, err
	}

	if user.Name.Formatted == "" {
		user.Name.Formatted = id
	}

	req, _, err := convert.UserToMailboxRequest(user, u.cfg.DefaultPassword)
	if err != nil {
		logger.Error().Err(err).Msg("invalid user resource")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	status, body, err := u.mailcow.CreateMailbox(ctx, *req)
	if err != nil {
		logger.Error().Err(err).Msg("failed to provision mailbox")
		return scim.Resource{}, err
	}

	if status != http.StatusOK && status != http.StatusConflict {
		logger.Error().Int("status", status).Str("body", body).Msg("mailbox provisioning rejected")
		return scim.Resource{}, serrors.ScimErrorBadRequest("mailcow error: " + body)
	}

	u.metrics.UserSynced()

	result := scim.Resource{
		ID:         id,
		ExternalID: optional.NewString(id),
		Attributes: attributes,
	}

	logger.Trace().Any("response", result).Msg("user replaced")

	return result, nil
}
