package invite

// ActivateRequest is the body of POST /invites/activate.
type ActivateRequest struct {
	Code string `json:"code" validate:"required,len=7,uppercase"`
}
