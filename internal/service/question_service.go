package service

import (
	"fmt"
	"math/rand"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Rotom/internal/dto"
	"github.com/lshigami/Rotom/internal/model"
	"github.com/lshigami/Rotom/internal/repository"
	"github.com/rs/zerolog/log"
)

// Categories is the fixed set exposed by the categories endpoint. It is
// intentionally independent of whatever categories stored questions carry.
var Categories = []string{"Science", "History", "Sports", "Entertainment", "Geography"}

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionSummaryResponse, error)
	UpdateQuestion(id uint, req dto.UpdateQuestionRequest) error
	DeleteQuestion(id uint) error
	RandomQuestion() (*dto.QuestionResponse, error)
	RandomQuestionByCategory(category string) (*dto.QuestionResponse, error)
	GetAnswer(id uint) (*dto.AnswerResponse, error)
	GetHint(id uint) (*dto.HintResponse, error)
	GetCategories() []string
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{}
	copier.Copy(&question, &req)

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionSummaryResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionSummaryResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) error {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Answer != nil {
		question.Answer = *req.Answer
	}

	return s.repo.Update(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *questionService) RandomQuestion() (*dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return pickRandom(questions)
}

func (s *questionService) RandomQuestionByCategory(category string) (*dto.QuestionResponse, error) {
	questions, err := s.repo.FindByCategory(category)
	if err != nil {
		return nil, err
	}
	return pickRandom(questions)
}

// pickRandom selects uniformly from the candidate set.
func pickRandom(questions []model.Question) (*dto.QuestionResponse, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	question := questions[rand.Intn(len(questions))]
	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetAnswer(id uint) (*dto.AnswerResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.AnswerResponse{Question: question.Question, CorrectAnswer: question.Answer}, nil
}

func (s *questionService) GetHint(id uint) (*dto.HintResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.HintResponse{Question: question.Question, Hint: hintFor(question.Answer)}, nil
}

// hintFor exposes the first and last character of the answer. An empty answer
// yields an empty hint rather than an error.
func hintFor(answer string) string {
	runes := []rune(answer)
	if len(runes) == 0 {
		return ""
	}
	return fmt.Sprintf("The answer starts with '%c' and ends with '%c'", runes[0], runes[len(runes)-1])
}

func (s *questionService) GetCategories() []string {
	return Categories
}
