package request

// EmailEstimateRequest optionally overrides the recipient; when empty the
// estimate's saved customer email is used.
type EmailEstimateRequest struct {
	Recipient string `json:"recipient"`
}
