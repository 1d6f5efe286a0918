package dto

// QuestionSummaryResponse is the shape of entries in the full question listing.
type QuestionSummaryResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Category string `json:"category"`
	Answer   string `json:"answer"`
}

// QuestionResponse is the shape returned by the random-question endpoints.
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Category   string `json:"category"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type AnswerResponse struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

type HintResponse struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

type LeaderboardEntryResponse struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type UserScoreResponse struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type HistoryResponse struct {
	Username string `json:"username"`
	History  string `json:"history"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
