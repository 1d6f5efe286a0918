package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/Rotom/internal/dto"
	"github.com/lshigami/Rotom/internal/model"
	"github.com/lshigami/Rotom/internal/repository"
	"github.com/rs/zerolog/log"
)

// EngagementService covers feedback and notifications. Referential checks are
// deliberately absent: feedback may reference users or questions that no
// longer exist, matching the permissive storage model.
type EngagementService interface {
	SubmitFeedback(req dto.SubmitFeedbackRequest) error
	AddNotification(req dto.AddNotificationRequest) error
	DeleteNotifications(userID uint) error
}

type engagementService struct {
	feedbackRepo     repository.FeedbackRepository
	notificationRepo repository.NotificationRepository
}

func NewEngagementService(feedbackRepo repository.FeedbackRepository, notificationRepo repository.NotificationRepository) EngagementService {
	return &engagementService{feedbackRepo: feedbackRepo, notificationRepo: notificationRepo}
}

func (s *engagementService) SubmitFeedback(req dto.SubmitFeedbackRequest) error {
	feedback := model.Feedback{}
	copier.Copy(&feedback, &req)

	if err := s.feedbackRepo.Create(&feedback); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("questionID", req.QuestionID).Msg("Failed to submit feedback")
		return err
	}
	return nil
}

func (s *engagementService) AddNotification(req dto.AddNotificationRequest) error {
	notification := model.Notification{}
	copier.Copy(&notification, &req)

	if err := s.notificationRepo.Create(&notification); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to add notification")
		return err
	}
	return nil
}

func (s *engagementService) DeleteNotifications(userID uint) error {
	return s.notificationRepo.DeleteByUserID(userID)
}
