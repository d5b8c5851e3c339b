// Package convert translates between SCIM resource shapes and mailcow
// payloads. All functions are pure; downstream calls happen elsewhere.
package convert

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/elimity-com/scim"
	"github.com/elimity-com/scim/optional"
	"github.com/mailcow-tools/scim-bridge/pkg/mailcow"
	"github.com/mailcow-tools/scim-bridge/pkg/model"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrNoAddress          = errors.New("user resource carries no usable address")
	ErrInvalidAddress     = errors.New("address is not a valid email address")
	ErrMemberValueMissing = errors.New("group member has no value")
)

// Fixed provisioning defaults applied to every mailbox the bridge creates.
const (
	defaultQuotaMB = 3072
	mailboxTag     = "scim"
)

func Unmarshal[S any, D any](source S, dest *D) error {
	data, err := json.Marshal(source)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// MailboxToResource maps a mailbox record onto a SCIM User. The address is
// the resource id, the external id and the only email value.
func MailboxToResource(mb *mailcow.Mailbox) scim.Resource {
	name := lo.Ternary(mb.Name != "", mb.Name, mb.Username)

	return scim.Resource{
		ID:         mb.Username,
		ExternalID: optional.NewString(mb.Username),
		Attributes: scim.ResourceAttributes{
			"userName": mb.Username,
			"name": map[string]interface{}{
				"formatted": name,
			},
			"emails": []interface{}{
				map[string]interface{}{
					"value":   mb.Username,
					"primary": true,
				},
			},
		},
	}
}

// UserToMailboxRequest derives the add/mailbox payload from a SCIM user. The
// canonical address is emails[0].value when present, userName otherwise, and
// must contain an '@'; the split happens on the last one.
func UserToMailboxRequest(user *model.User, password string) (*mailcow.CreateMailboxRequest, string, error) {
	address := user.UserName

	if len(user.Emails) > 0 {
		if user.Emails[0].Value == "" {
			return nil, "", errors.Wrap(ErrNoAddress, "emails[0].value is empty")
		}

		address = user.Emails[0].Value
	}

	if address == "" {
		return nil, "", ErrNoAddress
	}

	local, domain, err := SplitAddress(address)
	if err != nil {
		return nil, "", err
	}

	name := lo.Ternary(user.Name.Formatted != "", user.Name.Formatted, address)

	req := &mailcow.CreateMailboxRequest{
		Active:        "1",
		Domain:        domain,
		LocalPart:     local,
		Name:          name,
		AuthSource:    "mailcow",
		Password:      password,
		Password2:     password,
		Quota:         strconv.Itoa(defaultQuotaMB),
		ForcePwUpdate: "1",
		TLSEnforceIn:  "1",
		TLSEnforceOut: "1",
		Tags:          []string{mailboxTag},
	}

	return req, address, nil
}

// SplitAddress splits an email address on the last '@' into local part and
// domain. Addresses without one, or with an empty side, are invalid input.
func SplitAddress(address string) (string, string, error) {
	i := strings.LastIndex(address, "@")
	if i <= 0 || i == len(address)-1 {
		return "", "", errors.Wrapf(ErrInvalidAddress, "address %q", address)
	}

	return address[:i], address[i+1:], nil
}

// GroupMembers extracts the member addresses of a group. A member without a
// value is malformed input, not something to skip.
func GroupMembers(group *model.Group) ([]string, error) {
	addresses := make([]string, 0, len(group.Members))

	for i, m := range group.Members {
		if m.Value == "" {
			return nil, errors.Wrapf(ErrMemberValueMissing, "member %d", i)
		}

		addresses = append(addresses, m.Value)
	}

	return addresses, nil
}

// GroupToResource builds the SCIM Group echoed back after a sync. The display
// name doubles as the resource id.
func GroupToResource(id, displayName string, members []string) scim.Resource {
	memberAttrs := make([]interface{}, 0, len(members))
	for _, addr := range members {
		memberAttrs = append(memberAttrs, map[string]interface{}{
			"value": addr,
		})
	}

	return scim.Resource{
		ID: id,
		Attributes: scim.ResourceAttributes{
			"displayName": displayName,
			"members":     memberAttrs,
		},
	}
}
