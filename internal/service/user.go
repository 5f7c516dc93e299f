package service

import (
	"fmt"
	"log/slog"

	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
	emailService   *EmailService
}

func NewUserService(userRepository repository.UserRepository, emailService *EmailService) *UserService {
	return &UserService{
		userRepository: userRepository,
		emailService:   emailService,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

// DeleteAccount removes the user; reviews and tokens go with it via ON
// DELETE CASCADE.
func (s *UserService) DeleteAccount(userID string) error {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	err = s.userRepository.Delete(userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	err = s.emailService.SendAccountDeletedEmail(user.Email)
	if err != nil {
		slog.Warn("failed to send account deleted email", "error", err, "email", user.Email)
	}

	slog.Info("account deleted", "user_id", userID)
	return nil
}
