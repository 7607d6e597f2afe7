package pagination

const (
	// DefaultLimit is the page size applied when the caller supplies none.
	DefaultLimit = 50
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 500
)

// ListParams represents simple limit/offset pagination input.
type ListParams struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// Default returns the default list parameters.
func Default() ListParams {
	return ListParams{Limit: DefaultLimit}
}

// Validate clamps the parameters into valid ranges.
func (p *ListParams) Validate() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
