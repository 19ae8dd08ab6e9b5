package domain

// Status classifies a business contact. Rendered as a color-coded badge.
type Status string

const (
	StatusGreen  Status = "green"  // interested
	StatusYellow Status = "yellow" // on hold
	StatusRed    Status = "red"    // not interested
	StatusUnset  Status = ""
)

// Valid reports whether s is one of the known status values (including unset).
func (s Status) Valid() bool {
	switch s {
	case StatusGreen, StatusYellow, StatusRed, StatusUnset:
		return true
	}
	return false
}

// Business is one contact entry in the directory.
// CreatedAt is an ISO 8601 timestamp; the local in-memory variant leaves it empty.
type Business struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Type      string `json:"type,omitempty"`
	Comment   string `json:"comment,omitempty"`
	Status    Status `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
