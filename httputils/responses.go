package httputils

// RequestError godoc
// swagger:model RequestError
type RequestError struct {
	Error string `json:"error"`
}

// SubmitResp is the envelope returned by the intake endpoints
type SubmitResp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StatusResp carries an applicant's latest application status
type StatusResp struct {
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
