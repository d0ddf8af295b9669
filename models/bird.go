package models

// Bird is the toy resource served by the birds router.
// Birds are not persisted; the router echoes validated input back with the
// identifier from the URL, or a generated one on creation.
type Bird struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Color []string `json:"color"`
}

// Season is the canned payload served by the seasons router.
type Season struct {
	Details     string `json:"details"`
	Temperature string `json:"temperature"`
	Conditions  string `json:"conditions"`
}
