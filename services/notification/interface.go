package notification

import (
	"context"
	"errors"
	"fmt"

	userRepo "hireloop/database/repository/user"
	"hireloop/models"
	"hireloop/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Sender is the part of *messaging.Client the service uses.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	NotifyModeration(ctx context.Context, userID, actionType, reason string)
}

// DefaultNotificationService is the production implementation. A nil Client
// disables pushes.
type DefaultNotificationService struct {
	Client Sender
	Users  userRepo.UserRepository
}

func NewDefaultNotificationService(client *messaging.Client, users userRepo.UserRepository) *DefaultNotificationService {
	svc := &DefaultNotificationService{Users: users}
	if client != nil {
		svc.Client = client
	}
	return svc
}

// ErrPushDisabled is returned when no messaging client is configured.
var ErrPushDisabled = errors.New("push notifications are disabled")

// SendUserPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	if s.Client == nil {
		return ErrPushDisabled
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not load user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("SendUserPushNotification: user %s has no FCM token", userID)
	}
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = u.Role
	}

	msg := &messaging.Message{
		Token:        u.FCMToken,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	}
	response, err := s.Client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	utils.GetLogger().Debug("push sent", zap.String("userID", userID), zap.String("messageID", response))
	return nil
}

var moderationMessages = map[string][2]string{
	models.ActionApproveWorker:   {"Profile approved", "Your profile is now visible to employers."},
	models.ActionRejectWorker:    {"Profile not approved", "Your profile was not approved."},
	models.ActionSuspendWorker:   {"Account suspended", "Your account has been suspended."},
	models.ActionBanWorker:       {"Account banned", "Your account has been banned."},
	models.ActionWarnWorker:      {"Warning issued", "You have received a warning from the moderators."},
	models.ActionSuspendEmployer: {"Account suspended", "Your account has been suspended."},
	models.ActionBanEmployer:     {"Account banned", "Your account has been banned."},
	models.ActionWarnEmployer:    {"Warning issued", "You have received a warning from the moderators."},
}

// NotifyModeration tells the affected user about a moderation outcome.
// Failures are logged only.
func (s *DefaultNotificationService) NotifyModeration(ctx context.Context, userID, actionType, reason string) {
	msg, ok := moderationMessages[actionType]
	if !ok || s.Client == nil {
		return
	}
	body := msg[1]
	if reason != "" {
		body += " Reason: " + reason
	}
	err := s.SendUserPushNotification(ctx, userID, msg[0], body, map[string]string{
		"type":   "moderation",
		"action": actionType,
	})
	if err != nil {
		utils.GetLogger().Warn("moderation push not delivered",
			zap.String("userID", userID), zap.String("action", actionType), zap.Error(err))
	}
}
