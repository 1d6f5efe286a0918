package dto

type CreateQuestionRequest struct {
	Category    string  `json:"category" binding:"required"`
	Question    string  `json:"question" binding:"required"`
	Answer      string  `json:"answer" binding:"required"`
	Difficulty  string  `json:"difficulty" binding:"required"`
	Explanation *string `json:"explanation"`
}

// UpdateQuestionRequest is a partial update; absent fields keep stored values.
type UpdateQuestionRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type UpdateScoreRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Points int  `json:"points"` // may be zero or negative, so no "required"
}

type SubmitFeedbackRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	QuestionID uint   `json:"question_id" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
}

type AddNotificationRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}
