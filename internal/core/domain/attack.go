package domain

// Attack is an informational entry about an attack technique, rendered on its
// own page and listed on the home page.
type Attack struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

// BreachCandidate is a single SUFFIX:COUNT record returned by the range API.
// Candidates are ephemeral; they live for the duration of one lookup.
type BreachCandidate struct {
	Suffix string
	Count  int
}
