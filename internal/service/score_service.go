package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/Rotom/internal/dto"
	"github.com/lshigami/Rotom/internal/model"
	"github.com/lshigami/Rotom/internal/repository"
	"github.com/rs/zerolog/log"
)

// historyPlaceholder stands in until per-user quiz history is recorded.
const historyPlaceholder = "Past quiz history will be added here"

type ScoreService interface {
	Leaderboard(limit int) ([]dto.LeaderboardEntryResponse, error)
	GetUserScore(userID uint) (*dto.UserScoreResponse, error)
	UpdateScore(req dto.UpdateScoreRequest) error
	GetHistory(userID uint) (*dto.HistoryResponse, error)
}

type scoreService struct {
	userRepo  repository.UserRepository
	scoreRepo repository.ScoreRepository
}

func NewScoreService(userRepo repository.UserRepository, scoreRepo repository.ScoreRepository) ScoreService {
	return &scoreService{userRepo: userRepo, scoreRepo: scoreRepo}
}

func (s *scoreService) Leaderboard(limit int) ([]dto.LeaderboardEntryResponse, error) {
	users, err := s.userRepo.FindTopByScore(limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LeaderboardEntryResponse, 0, len(users))
	copier.Copy(&resp, &users)
	return resp, nil
}

func (s *scoreService) GetUserScore(userID uint) (*dto.UserScoreResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserScoreResponse{Username: user.Username, Score: user.Score}, nil
}

// UpdateScore adds points to the user's running total and appends a row to
// the score log. Users are never auto-created here; an unknown id is an error.
func (s *scoreService) UpdateScore(req dto.UpdateScoreRequest) error {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return err
	}

	if err := s.userRepo.IncrementScore(req.UserID, req.Points); err != nil {
		return err
	}

	entry := model.Score{UserID: req.UserID, Points: req.Points}
	if err := s.scoreRepo.Create(&entry); err != nil {
		// The increment already landed; the log row is best effort.
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to append score log entry")
	}
	return nil
}

func (s *scoreService) GetHistory(userID uint) (*dto.HistoryResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryResponse{Username: user.Username, History: historyPlaceholder}, nil
}
