package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rotom/internal/dto"
	"github.com/lshigami/Rotom/internal/model"
	"github.com/lshigami/Rotom/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory repositories so handler tests run the real service stack without a database.

type memQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
}

func (r *memQuestionRepo) Create(q *model.Question) error {
	q.ID = r.nextID
	r.nextID++
	r.questions[q.ID] = *q
	return nil
}

func (r *memQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *memQuestionRepo) FindAll() ([]model.Question, error) {
	out := make([]model.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q)
	}
	return out, nil
}

func (r *memQuestionRepo) FindByCategory(category string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) Update(q *model.Question) error {
	if _, ok := r.questions[q.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.questions[q.ID] = *q
	return nil
}

func (r *memQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

type memUserRepo struct {
	users map[uint]model.User
}

func (r *memUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUserRepo) FindTopByScore(limit int) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Score > out[j-1].Score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memUserRepo) IncrementScore(id uint, points int) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Score += points
	r.users[id] = u
	return nil
}

type memScoreRepo struct {
	entries []model.Score
}

func (r *memScoreRepo) Create(s *model.Score) error {
	r.entries = append(r.entries, *s)
	return nil
}

type memFeedbackRepo struct {
	entries []model.Feedback
}

func (r *memFeedbackRepo) Create(f *model.Feedback) error {
	r.entries = append(r.entries, *f)
	return nil
}

type memNotificationRepo struct {
	entries []model.Notification
}

func (r *memNotificationRepo) Create(n *model.Notification) error {
	r.entries = append(r.entries, *n)
	return nil
}

func (r *memNotificationRepo) DeleteByUserID(userID uint) error {
	kept := r.entries[:0]
	for _, n := range r.entries {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	r.entries = kept
	return nil
}

type testEnv struct {
	router        *gin.Engine
	questions     *memQuestionRepo
	users         *memUserRepo
	notifications *memNotificationRepo
}

func newTestEnv(users ...model.User) *testEnv {
	gin.SetMode(gin.TestMode)

	questions := &memQuestionRepo{questions: make(map[uint]model.Question), nextID: 1}
	userRepo := &memUserRepo{users: make(map[uint]model.User)}
	for _, u := range users {
		userRepo.users[u.ID] = u
	}
	notifications := &memNotificationRepo{}

	ctrl := NewController(
		service.NewQuestionService(questions),
		service.NewScoreService(userRepo, &memScoreRepo{}),
		service.NewEngagementService(&memFeedbackRepo{}, notifications),
	)

	router := gin.New()
	ctrl.RegisterRoutes(router)

	return &testEnv{router: router, questions: questions, users: userRepo, notifications: notifications}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateQuestionEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "Science", "question": "2+2?", "answer": "4", "difficulty": "easy",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Question added successfully", decode[dto.MessageResponse](t, w).Message)

	list := env.do(t, http.MethodGet, "/trivia/questions", nil)
	require.Equal(t, http.StatusOK, list.Code)
	entries := decode[[]dto.QuestionSummaryResponse](t, list)
	require.Len(t, entries, 1)
	assert.Equal(t, "2+2?", entries[0].Question)
	assert.Equal(t, "Science", entries[0].Category)
	assert.Equal(t, "4", entries[0].Answer)
}

func TestCreateQuestionMissingField(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "Science", "question": "2+2?",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := env.do(t, http.MethodGet, "/trivia/questions", nil)
	assert.Empty(t, decode[[]dto.QuestionSummaryResponse](t, list))
}

func TestUpdateQuestionEndpoint(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "Science", "question": "2+2?", "answer": "4", "difficulty": "easy",
	})

	w := env.do(t, http.MethodPut, "/trivia/questions/1", gin.H{"answer": "four"})
	require.Equal(t, http.StatusOK, w.Code)

	answer := env.do(t, http.MethodGet, "/trivia/questions/1/answer", nil)
	require.Equal(t, http.StatusOK, answer.Code)
	resp := decode[dto.AnswerResponse](t, answer)
	assert.Equal(t, "2+2?", resp.Question, "question text untouched by partial update")
	assert.Equal(t, "four", resp.CorrectAnswer)
}

func TestUpdateQuestionNotFoundEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPut, "/trivia/questions/99", gin.H{"answer": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Question not found", decode[dto.ErrorResponse](t, w).Error)
}

func TestDeleteQuestionEndpoint(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "Science", "question": "2+2?", "answer": "4", "difficulty": "easy",
	})

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/trivia/questions/99", nil).Code)

	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/trivia/questions/1", nil).Code)
	list := env.do(t, http.MethodGet, "/trivia/questions", nil)
	assert.Empty(t, decode[[]dto.QuestionSummaryResponse](t, list))
}

func TestCategoriesEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/trivia/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.CategoriesResponse](t, w)
	assert.Equal(t, []string{"Science", "History", "Sports", "Entertainment", "Geography"}, resp.Categories)
}

func TestRandomQuestionEndpoint(t *testing.T) {
	env := newTestEnv()

	empty := env.do(t, http.MethodGet, "/trivia/questions/random", nil)
	require.Equal(t, http.StatusNotFound, empty.Code)
	assert.Equal(t, "No questions available", decode[dto.MessageResponse](t, empty).Message)

	env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "History", "question": "q", "answer": "a", "difficulty": "hard",
	})
	w := env.do(t, http.MethodGet, "/trivia/questions/random", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.QuestionResponse](t, w)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "hard", resp.Difficulty)
}

func TestRandomQuestionByCategoryEndpoint(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "Science", "question": "q1", "answer": "a1", "difficulty": "easy",
	})

	miss := env.do(t, http.MethodGet, "/trivia/questions/Geography/random", nil)
	require.Equal(t, http.StatusNotFound, miss.Code)
	assert.Equal(t, "No questions available in this category", decode[dto.MessageResponse](t, miss).Message)

	hit := env.do(t, http.MethodGet, "/trivia/questions/Science/random", nil)
	require.Equal(t, http.StatusOK, hit.Code)
	assert.Equal(t, "Science", decode[dto.QuestionResponse](t, hit).Category)
}

func TestHintEndpoint(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/trivia/questions", gin.H{
		"category": "Science", "question": "2+2?", "answer": "4", "difficulty": "easy",
	})

	w := env.do(t, http.MethodGet, "/trivia/questions/1/hints", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The answer starts with '4' and ends with '4'", decode[dto.HintResponse](t, w).Hint)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/trivia/questions/2/hints", nil).Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	env := newTestEnv(
		model.User{ID: 1, Username: "ash", Score: 30},
		model.User{ID: 2, Username: "misty", Score: 50},
		model.User{ID: 3, Username: "brock", Score: 10},
	)

	w := env.do(t, http.MethodGet, "/trivia/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]dto.LeaderboardEntryResponse](t, w)
	require.Len(t, entries, 3)
	assert.Equal(t, "misty", entries[0].Username)
	assert.Equal(t, "ash", entries[1].Username)
	assert.Equal(t, "brock", entries[2].Username)
}

func TestScoreEndpoints(t *testing.T) {
	env := newTestEnv(model.User{ID: 1, Username: "ash", Score: 5})

	w := env.do(t, http.MethodPut, "/trivia/score/update", gin.H{"user_id": 1, "points": 7})
	require.Equal(t, http.StatusOK, w.Code)

	score := env.do(t, http.MethodGet, "/trivia/score/1", nil)
	require.Equal(t, http.StatusOK, score.Code)
	resp := decode[dto.UserScoreResponse](t, score)
	assert.Equal(t, 12, resp.Score)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/trivia/score/9", nil).Code)
}

func TestUpdateScoreUnknownUserEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPut, "/trivia/score/update", gin.H{"user_id": 42, "points": 7})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode[dto.ErrorResponse](t, w).Error)
	assert.Empty(t, env.users.users, "unknown users must not be auto-created")
}

func TestHistoryEndpoint(t *testing.T) {
	env := newTestEnv(model.User{ID: 1, Username: "ash"})

	w := env.do(t, http.MethodGet, "/trivia/user/1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.HistoryResponse](t, w)
	assert.Equal(t, "ash", resp.Username)
	assert.Equal(t, "Past quiz history will be added here", resp.History)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/trivia/user/2/history", nil).Code)
}

func TestFeedbackEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/trivia/feedback", gin.H{
		"user_id": 1, "question_id": 2, "comment": "too easy",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Feedback submitted successfully", decode[dto.MessageResponse](t, w).Message)

	assert.Equal(t, http.StatusBadRequest,
		env.do(t, http.MethodPost, "/trivia/feedback", gin.H{"user_id": 1}).Code)
}

func TestRecommendationsEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/trivia/quiz/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"Recommended categories based on user preferences will be added here",
		decode[dto.MessageResponse](t, w).Message)
}

func TestNotificationEndpoints(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/trivia/notifications", gin.H{"user_id": 1, "message": "new quiz"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, env.notifications.entries, 1)

	del := env.do(t, http.MethodDelete, "/trivia/notifications/1", nil)
	require.Equal(t, http.StatusOK, del.Code)
	assert.Equal(t, "Notifications deleted successfully", decode[dto.MessageResponse](t, del).Message)
	assert.Empty(t, env.notifications.entries)

	// Deleting when nothing exists is still a success.
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/trivia/notifications/7", nil).Code)
}
