package dataset

// Restaurant is one cleaned row of the loaded table. Cuisines is always a
// lowercase, non-empty string and Rating is always a finite number; the
// remaining fields are passed through from the source file for display.
type Restaurant struct {
	Name        string   `json:"name"`
	Cuisines    string   `json:"cuisines"`
	Rating      float64  `json:"rating"`
	Votes       int      `json:"votes"`
	Locality    string   `json:"locality,omitempty"`
	AverageCost string   `json:"average_cost,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Table is the in-memory dataset. It is built once and treated as read-only
// afterwards; filtering always produces new slices.
type Table []Restaurant
