package service

import (
	"testing"

	"github.com/lshigami/Rotom/internal/dto"
	"github.com/lshigami/Rotom/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]model.Question), nextID: 1}
}

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	q.ID = r.nextID
	r.nextID++
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	out := make([]model.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindByCategory(category string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Update(q *model.Question) error {
	if _, ok := r.questions[q.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

func seedQuestion(t *testing.T, svc QuestionService, category, question, answer, difficulty string) dto.QuestionResponse {
	t.Helper()
	resp, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Category:   category,
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
	})
	require.NoError(t, err)
	return *resp
}

func TestCreateAndListQuestions(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	created := seedQuestion(t, svc, "Science", "2+2?", "4", "easy")
	assert.NotZero(t, created.ID)

	list, err := svc.GetAllQuestions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "2+2?", list[0].Question)
	assert.Equal(t, "Science", list[0].Category)
	assert.Equal(t, "4", list[0].Answer)
}

func TestUpdateQuestionPartial(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	created := seedQuestion(t, svc, "History", "First US president?", "Washington", "easy")

	newText := "Who was the first US president?"
	err := svc.UpdateQuestion(created.ID, dto.UpdateQuestionRequest{Question: &newText})
	require.NoError(t, err)

	answer, err := svc.GetAnswer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, newText, answer.Question)
	assert.Equal(t, "Washington", answer.CorrectAnswer, "absent fields must keep stored values")
}

func TestUpdateQuestionNotFound(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	newText := "anything"
	err := svc.UpdateQuestion(42, dto.UpdateQuestionRequest{Question: &newText})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	created := seedQuestion(t, svc, "Sports", "How many players in a football team?", "11", "easy")

	require.NoError(t, svc.DeleteQuestion(created.ID))

	list, err := svc.GetAllQuestions()
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.DeleteQuestion(created.ID), gorm.ErrRecordNotFound)
}

func TestRandomQuestionEmpty(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	_, err := svc.RandomQuestion()
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestRandomQuestionIsMemberOfSet(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	ids := map[uint]bool{
		seedQuestion(t, svc, "Science", "q1", "a1", "easy").ID:   true,
		seedQuestion(t, svc, "History", "q2", "a2", "medium").ID: true,
		seedQuestion(t, svc, "Science", "q3", "a3", "hard").ID:   true,
	}

	for i := 0; i < 20; i++ {
		q, err := svc.RandomQuestion()
		require.NoError(t, err)
		assert.True(t, ids[q.ID])
	}
}

func TestRandomQuestionByCategory(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	seedQuestion(t, svc, "Science", "q1", "a1", "easy")
	seedQuestion(t, svc, "History", "q2", "a2", "medium")

	for i := 0; i < 10; i++ {
		q, err := svc.RandomQuestionByCategory("Science")
		require.NoError(t, err)
		assert.Equal(t, "Science", q.Category)
	}

	_, err := svc.RandomQuestionByCategory("Geography")
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestGetHint(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	created := seedQuestion(t, svc, "Science", "2+2?", "4", "easy")

	hint, err := svc.GetHint(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The answer starts with '4' and ends with '4'", hint.Hint)
	assert.Equal(t, "2+2?", hint.Question)
}

func TestGetHintMultiCharAnswer(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	created := seedQuestion(t, svc, "Geography", "Capital of France?", "Paris", "easy")

	hint, err := svc.GetHint(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The answer starts with 'P' and ends with 's'", hint.Hint)
}

func TestHintForEmptyAnswer(t *testing.T) {
	assert.Equal(t, "", hintFor(""))
}

func TestGetHintNotFound(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	_, err := svc.GetHint(99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetCategoriesFixedList(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	// The list stays fixed regardless of stored questions.
	seedQuestion(t, svc, "Obscure Trivia", "q", "a", "hard")

	assert.Equal(t,
		[]string{"Science", "History", "Sports", "Entertainment", "Geography"},
		svc.GetCategories())
}
