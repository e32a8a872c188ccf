package comment

// CreateRequest is the body of POST /assets/{id}/comments.
type CreateRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
	Rating  int    `json:"rating" validate:"min=0,max=5"`
}
