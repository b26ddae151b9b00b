package model

// Acknowledgement is one entry on the Thanks page: a name, a link, and a
// short description of what the site owes them. Flat storage, no behaviour.
type Acknowledgement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}
