package types

type (
	// ListResult contains the outcome of scanning a single directory.
	ListResult struct {
		Dir     string   `json:"dir"`
		Files   []string `json:"files"`
		Success bool     `json:"success"`
		Message string   `json:"message,omitempty"`
		Err     error    `json:"-"`
	}
)
