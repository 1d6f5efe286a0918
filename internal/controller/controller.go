package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lshigami/Rotom/internal/dto"
	"github.com/lshigami/Rotom/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	questionSvc   service.QuestionService
	scoreSvc      service.ScoreService
	engagementSvc service.EngagementService
}

func NewController(qSvc service.QuestionService, sSvc service.ScoreService, eSvc service.EngagementService) *Controller {
	return &Controller{
		questionSvc:   qSvc,
		scoreSvc:      sSvc,
		engagementSvc: eSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	trivia := router.Group("/trivia")
	{
		questions := trivia.Group("/questions")
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.GET("", ctrl.GetAllQuestionsHandler)
		questions.PUT("/:id", ctrl.UpdateQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
		questions.GET("/random", ctrl.RandomQuestionHandler)
		// Gin allows one wildcard name per segment, so the GET subtree shares
		// ":key"; each handler decides whether it is a category or an id.
		questions.GET("/:key/random", ctrl.RandomQuestionByCategoryHandler)
		questions.GET("/:key/answer", ctrl.GetAnswerHandler)
		questions.GET("/:key/hints", ctrl.GetHintHandler)

		trivia.GET("/categories", ctrl.GetCategoriesHandler)
		trivia.GET("/leaderboard", ctrl.GetLeaderboardHandler)
		trivia.GET("/score/:user_id", ctrl.GetUserScoreHandler)
		trivia.PUT("/score/update", ctrl.UpdateScoreHandler)
		trivia.GET("/user/:user_id/history", ctrl.GetUserHistoryHandler)
		trivia.POST("/feedback", ctrl.SubmitFeedbackHandler)
		trivia.GET("/quiz/recommendations", ctrl.GetRecommendationsHandler)
		trivia.POST("/notifications", ctrl.AddNotificationHandler)
		trivia.DELETE("/notifications/:user_id", ctrl.DeleteNotificationsHandler)
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// --- Question Handlers ---

// CreateQuestionHandler godoc
// @Summary Create a new trivia question
// @Description Add a new trivia question with category, question text, answer and difficulty
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required field"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := ctrl.questionSvc.CreateQuestion(req); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Question added successfully"})
}

// GetAllQuestionsHandler godoc
// @Summary Get all trivia questions
// @Description Retrieve every stored trivia question
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions [get]
func (ctrl *Controller) GetAllQuestionsHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all questions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// UpdateQuestionHandler godoc
// @Summary Update a trivia question
// @Description Partially update a question's text and/or answer
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format or request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions/{id} [put]
func (ctrl *Controller) UpdateQuestionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.questionSvc.UpdateQuestion(id, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Failed to update question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question updated successfully"})
}

// DeleteQuestionHandler godoc
// @Summary Delete a trivia question
// @Description Remove a question from the system
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.questionSvc.DeleteQuestion(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Failed to delete question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}

// GetCategoriesHandler godoc
// @Summary Get all trivia categories
// @Description Retrieve the fixed list of trivia categories
// @Tags questions
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /trivia/categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: ctrl.questionSvc.GetCategories()})
}

// RandomQuestionHandler godoc
// @Summary Get a random trivia question
// @Description Pick one question uniformly from all stored questions
// @Tags questions
// @Produce json
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.MessageResponse "No questions available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions/random [get]
func (ctrl *Controller) RandomQuestionHandler(c *gin.Context) {
	question, err := ctrl.questionSvc.RandomQuestion()
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No questions available"})
			return
		}
		log.Error().Err(err).Msg("Failed to get random question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve random question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// RandomQuestionByCategoryHandler godoc
// @Summary Get a random trivia question from a category
// @Description Pick one question uniformly from the questions in the given category
// @Tags questions
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.MessageResponse "No questions available in this category"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions/{category}/random [get]
func (ctrl *Controller) RandomQuestionByCategoryHandler(c *gin.Context) {
	category := c.Param("key")

	question, err := ctrl.questionSvc.RandomQuestionByCategory(category)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No questions available in this category"})
			return
		}
		log.Error().Err(err).Str("category", category).Msg("Failed to get random question by category")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve random question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// GetAnswerHandler godoc
// @Summary Get the correct answer for a question
// @Description Retrieve the stored answer of a trivia question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions/{id}/answer [get]
func (ctrl *Controller) GetAnswerHandler(c *gin.Context) {
	id, ok := parseID(c, "key")
	if !ok {
		return
	}

	answer, err := ctrl.questionSvc.GetAnswer(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Failed to get answer")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve answer"})
		return
	}
	c.JSON(http.StatusOK, answer)
}

// GetHintHandler godoc
// @Summary Get a hint for a question
// @Description Derive a hint from the first and last character of the stored answer
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/questions/{id}/hints [get]
func (ctrl *Controller) GetHintHandler(c *gin.Context) {
	id, ok := parseID(c, "key")
	if !ok {
		return
	}

	hint, err := ctrl.questionSvc.GetHint(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("Failed to get hint")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve hint"})
		return
	}
	c.JSON(http.StatusOK, hint)
}

// --- Score Handlers ---

// GetLeaderboardHandler godoc
// @Summary Get the leaderboard
// @Description Retrieve the top 10 users ordered by score descending
// @Tags scores
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/leaderboard [get]
func (ctrl *Controller) GetLeaderboardHandler(c *gin.Context) {
	entries, err := ctrl.scoreSvc.Leaderboard(10)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get leaderboard")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetUserScoreHandler godoc
// @Summary Get a user's score
// @Description Retrieve a user's current score
// @Tags scores
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/score/{user_id} [get]
func (ctrl *Controller) GetUserScoreHandler(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	score, err := ctrl.scoreSvc.GetUserScore(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to get user score")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve score"})
		return
	}
	c.JSON(http.StatusOK, score)
}

// UpdateScoreHandler godoc
// @Summary Update a user's score
// @Description Add points (possibly negative) to a user's running score
// @Tags scores
// @Accept json
// @Produce json
// @Param score body dto.UpdateScoreRequest true "User ID and points delta"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/score/update [put]
func (ctrl *Controller) UpdateScoreHandler(c *gin.Context) {
	var req dto.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UpdateScoreRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.scoreSvc.UpdateScore(req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to update score")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update score: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Score updated successfully"})
}

// GetUserHistoryHandler godoc
// @Summary Get a user's quiz history
// @Description Placeholder endpoint; history tracking is not implemented yet
// @Tags scores
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/user/{user_id}/history [get]
func (ctrl *Controller) GetUserHistoryHandler(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	history, err := ctrl.scoreSvc.GetHistory(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to get user history")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// --- Feedback & Notification Handlers ---

// SubmitFeedbackHandler godoc
// @Summary Submit feedback for a question
// @Description Record a user's comment on a trivia question
// @Tags engagement
// @Accept json
// @Produce json
// @Param feedback body dto.SubmitFeedbackRequest true "Feedback data"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/feedback [post]
func (ctrl *Controller) SubmitFeedbackHandler(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitFeedbackRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.engagementSvc.SubmitFeedback(req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit feedback: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Feedback submitted successfully"})
}

// GetRecommendationsHandler godoc
// @Summary Get quiz recommendations
// @Description Placeholder endpoint; recommendation logic is not implemented yet
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /trivia/quiz/recommendations [get]
func (ctrl *Controller) GetRecommendationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recommended categories based on user preferences will be added here"})
}

// AddNotificationHandler godoc
// @Summary Add a notification for a user
// @Description Record a notification message for a user
// @Tags engagement
// @Accept json
// @Produce json
// @Param notification body dto.AddNotificationRequest true "Notification data"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/notifications [post]
func (ctrl *Controller) AddNotificationHandler(c *gin.Context) {
	var req dto.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AddNotificationRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.engagementSvc.AddNotification(req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add notification: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Notification added successfully"})
}

// DeleteNotificationsHandler godoc
// @Summary Delete all notifications for a user
// @Description Remove every notification for the user; succeeds even when none exist
// @Tags engagement
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trivia/notifications/{user_id} [delete]
func (ctrl *Controller) DeleteNotificationsHandler(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	if err := ctrl.engagementSvc.DeleteNotifications(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to delete notifications")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete notifications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notifications deleted successfully"})
}
