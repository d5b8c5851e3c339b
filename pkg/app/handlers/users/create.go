package users

import (
	"context"
	"net/http"

	"github.com/elimity-com/scim"
	serrors "github.com/elimity-com/scim/errors"
	"github.com/elimity-com/scim/optional"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
	"github.com/mailcow-tools/scim-bridge/pkg/model"
	"github.com/rs/zerolog"
)

func (u UsersResourceHandler) Create(ctx context.Context, attributes scim.ResourceAttributes) (scim.Resource, error) {
	userName, ok := attributes["userName"].(string)
	if !ok {
		return scim.Resource{}, serrors.ScimErrorInvalidSyntax
	}

	logger := u.logger.With().Str("method", "Create").Str("userName", userName).Logger()
	logger.Info().Msg("create user")
	logger.Trace().Any("attributes", attributes).Msg("creating user")

	user, err := u.convertAttributesToUser(attributes, logger)
	if err != nil {
		return scim.Resource{}, err
	}

	req, address, err := convert.UserToMailboxRequest(user, u.cfg.DefaultPassword)
	if err != nil {
		logger.Error().Err(err).Msg("invalid user resource")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	status, body, err := u.mailcow.CreateMailbox(ctx, *req)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create mailbox")
		return scim.Resource{}, err
	}

	if status != http.StatusOK {
		logger.Error().Int("status", status).Str("body", body).Msg("mailbox create rejected")
		return scim.Resource{}, serrors.ScimErrorBadRequest("mailcow error: " + body)
	}

	u.metrics.UserSynced()

	result := scim.Resource{
		ID:         address,
		ExternalID: optional.NewString(address),
		Attributes: attributes,
	}

	logger.Trace().Any("response", result).Msg("user created")

	return result, nil
}

func (u UsersResourceHandler) convertAttributesToUser(attributes scim.ResourceAttributes, logger zerolog.Logger) (*model.User, error) {
	user := &model.User{}
	if err := convert.Unmarshal(attributes, user); err != nil {
		logger.Err(err).Msg("failed to convert attributes to user")
		return nil, serrors.ScimErrorInvalidSyntax
	}

	return user, nil
}
