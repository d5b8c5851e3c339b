package model

// User Account. Only the attributes the bridge maps onto mailboxes are kept.
type User struct {
	Active     bool        `json:"active,omitempty"`
	Emails     []UserEmail `json:"emails,omitempty"`
	ExternalID string      `json:"externalId,omitempty"`
	ID         string      `json:"id,omitempty"`
	Name       UserName    `json:"name,omitempty"`
	UserName   string      `json:"userName"`
}

// Email addresses for the user. The first entry's value is the canonical
// address used to provision the mailbox.
type UserEmail struct {
	Value   string `json:"value"`
	Display string `json:"display,omitempty"`
	Type    string `json:"type,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

type UserName struct {
	Formatted  string `json:"formatted,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
	GivenName  string `json:"givenName,omitempty"`
}
