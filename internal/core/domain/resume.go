package domain

// Resume is a stored resume record. Skills is free-form text (comma-separated
// by convention) and experience is years as reported by the caller; neither is
// validated beyond its type.
type Resume struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Skills     string `json:"skills"`
	Experience int    `json:"experience"`
}
