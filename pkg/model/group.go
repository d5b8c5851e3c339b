package model

// Group. The display name doubles as the group identifier and as the literal
// custom-attribute value written to member mailboxes.
type Group struct {
	DisplayName string        `json:"displayName,omitempty"`
	ExternalID  string        `json:"externalId,omitempty"`
	ID          string        `json:"id,omitempty"`
	Members     []GroupMember `json:"members,omitempty"`
}

// A list of members of the Group. The value carries the mailbox address.
type GroupMember struct {
	Value   string `json:"value"`
	Ref     string `json:"$ref,omitempty"`
	Type    string `json:"type,omitempty"`
	Display string `json:"display,omitempty"`
}
