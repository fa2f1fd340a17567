package domain

// Course is a single catalog record.
type Course struct {
	// ID is the normalized (uppercase) course identifier, e.g. "CSCI300".
	ID string `json:"id" yaml:"id"`

	// Title is the free-text course title, case preserved.
	Title string `json:"title" yaml:"title"`

	// Prerequisites lists normalized identifiers in file order. They are
	// not required to exist in the catalog.
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
}
