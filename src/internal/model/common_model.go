package model

// ListRequest is shared by every listing route: offset pagination plus the
// cosmetic filters the dashboard exposes.
type ListRequest struct {
	Page   int    `query:"page" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0,max=1000"`
	Search string `query:"search"`
	Status string `query:"status"`
}

// Normalize applies the documented defaults: page 1, limit 10, and treats
// the "all" status filter as no filter.
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.Status == "all" {
		r.Status = ""
	}
}

type IDRequest struct {
	ID string `json:"-" validate:"required,max=100"`
}
