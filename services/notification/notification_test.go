package notification

import (
	"context"
	"errors"
	"testing"

	"hireloop/models"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, m *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "projects/hireloop/messages/1", nil
}

type users map[string]*models.User

func (u users) GetByID(ctx context.Context, id string) (*models.User, error) { return u[id], nil }

func (u users) GetByEmail(ctx context.Context, email string) (*models.User, error) { return nil, nil }

func (u users) GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	return nil, nil
}

func (u users) Upsert(ctx context.Context, user *models.User) (bool, error) { return false, nil }

func (u users) UpdateSetDocument(ctx context.Context, id string, doc bson.M) error { return nil }

func (u users) SearchIDs(ctx context.Context, role, text string) ([]string, error) { return nil, nil }

var directory = users{
	"w1": {ID: "w1", Role: models.RoleWorker, FCMToken: "token-w1"},
	"w2": {ID: "w2", Role: models.RoleWorker},
}

func TestNotifyModeration(t *testing.T) {
	sender := &fakeSender{}
	svc := &DefaultNotificationService{Client: sender, Users: directory}

	svc.NotifyModeration(context.Background(), "w1", models.ActionRejectWorker, "blurry photos")
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages", len(sender.sent))
	}
	m := sender.sent[0]
	if m.Token != "token-w1" || m.Notification.Title != "Profile not approved" {
		t.Errorf("unexpected message %+v", m)
	}
	if m.Notification.Body != "Your profile was not approved. Reason: blurry photos" {
		t.Errorf("body = %q", m.Notification.Body)
	}
	if m.Data["action"] != models.ActionRejectWorker || m.Data["role"] != models.RoleWorker {
		t.Errorf("data = %v", m.Data)
	}

	// Reversals and report actions are silent.
	svc.NotifyModeration(context.Background(), "w1", models.ActionUnsuspendWorker, "")
	svc.NotifyModeration(context.Background(), "w1", models.ActionResolveReport, "")
	if len(sender.sent) != 1 {
		t.Errorf("unexpected extra messages: %d", len(sender.sent))
	}
}

func TestSendUserPushNotificationFailures(t *testing.T) {
	disabled := NewDefaultNotificationService(nil, directory)
	if err := disabled.SendUserPushNotification(context.Background(), "w1", "t", "b", nil); !errors.Is(err, ErrPushDisabled) {
		t.Errorf("nil client: %v", err)
	}

	svc := &DefaultNotificationService{Client: &fakeSender{}, Users: directory}
	if err := svc.SendUserPushNotification(context.Background(), "w2", "t", "b", nil); err == nil {
		t.Errorf("user without token should fail")
	}

	failing := &DefaultNotificationService{Client: &fakeSender{err: errors.New("unregistered")}, Users: directory}
	if err := failing.SendUserPushNotification(context.Background(), "w1", "t", "b", nil); err == nil {
		t.Errorf("send failure should surface")
	}
	// NotifyModeration swallows the same failure.
	failing.NotifyModeration(context.Background(), "w1", models.ActionBanWorker, "")
}
