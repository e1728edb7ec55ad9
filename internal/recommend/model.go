package recommend

// Preferences is the user-supplied filter configuration. An empty Cuisines
// set applies no cuisine restriction; a nil MinRating applies no rating cut.
type Preferences struct {
	Cuisines  []string `json:"cuisines"`
	MinRating *float64 `json:"min_rating"`
}
