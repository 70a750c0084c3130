package handler

// sendRequestRequest is the body of POST /connections/request.
type sendRequestRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Message     string `json:"message" validate:"max=300"`
}

// messageResponse is the acknowledgement envelope for accept/reject/remove.
type messageResponse struct {
	Message string `json:"message"`
}
