package groups

import (
	"context"

	"github.com/elimity-com/scim"
	serrors "github.com/elimity-com/scim/errors"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
	"github.com/mailcow-tools/scim-bridge/pkg/model"
)

func (g GroupResourceHandler) Create(ctx context.Context, attributes scim.ResourceAttributes) (scim.Resource, error) {
	groupName, ok := attributes["displayName"].(string)
	if !ok {
		return scim.Resource{}, serrors.ScimErrorInvalidSyntax
	}

	logger := g.logger.With().Str("method", "Create").Str("name", groupName).Logger()
	logger.Info().Msg("create group")
	logger.Trace().Any("attributes", attributes).Msg("creating group")

	group := &model.Group{}
	if err := convert.Unmarshal(attributes, group); err != nil {
		logger.Error().Err(err).Msg("failed to convert attributes to group")
		return scim.Resource{}, serrors.ScimErrorInvalidSyntax
	}

	members, err := convert.GroupMembers(group)
	if err != nil {
		logger.Error().Err(err).Msg("malformed member list")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	if err := g.reconciler.Sync(ctx, groupName, members); err != nil {
		logger.Error().Err(err).Msg("failed to sync group")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	result := convert.GroupToResource(groupName, groupName, members)

	logger.Trace().Any("response", result).Msg("group created")

	return result, nil
}
