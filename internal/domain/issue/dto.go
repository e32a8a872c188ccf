package issue

// CreateRequest is the body of POST /assets/{id}/issues.
type CreateRequest struct {
	Title  string   `json:"title" validate:"required,min=3,max=200"`
	Body   string   `json:"body" validate:"max=10000"`
	Labels []string `json:"labels" validate:"max=10,dive,min=1,max=40"`
}

// SetStatusRequest is the body of PATCH /issues/{id}/status.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed"`
}
