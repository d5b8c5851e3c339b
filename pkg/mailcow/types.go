package mailcow

// Mailbox is the subset of the mailbox record the bridge reads.
type Mailbox struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	LocalPart string `json:"local_part"`
	Domain    string `json:"domain"`
	Active    int    `json:"active"`
	Quota     int64  `json:"quota"`
}

// CreateMailboxRequest mirrors the add/mailbox payload. The API takes most
// flags as string-encoded booleans.
type CreateMailboxRequest struct {
	Active        string   `json:"active"`
	Domain        string   `json:"domain"`
	LocalPart     string   `json:"local_part"`
	Name          string   `json:"name"`
	AuthSource    string   `json:"authsource"`
	Password      string   `json:"password"`
	Password2     string   `json:"password2"`
	Quota         string   `json:"quota"`
	ForcePwUpdate string   `json:"force_pw_update"`
	TLSEnforceIn  string   `json:"tls_enforce_in"`
	TLSEnforceOut string   `json:"tls_enforce_out"`
	Tags          []string `json:"tags"`
}

type CustomAttribute struct {
	Attribute []string `json:"attribute"`
	Value     []string `json:"value"`
}

type customAttributeRequest struct {
	Attr  CustomAttribute `json:"attr"`
	Items []string        `json:"items"`
}

type createDomainAdminRequest struct {
	Active    string `json:"active"`
	Domains   string `json:"domains"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Username  string `json:"username"`
}
