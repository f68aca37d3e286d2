package validators

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}
