package notification

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/repository"
)

// NotificationService handles FCM push notifications
type NotificationService struct {
	client     *messaging.Client
	deviceRepo *repository.DeviceRepository
}

// NewNotificationService creates a new FCM notification service
func NewNotificationService(credentialsFile string, deviceRepo *repository.DeviceRepository) (*NotificationService, error) {
	if credentialsFile == "" {
		log.Println("⚠️ Firebase credentials not provided, push notifications disabled")
		return nil, nil
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		// Log warning instead of error to not block server startup
		log.Printf("⚠️ Failed to initialize Firebase app: %v (push notifications disabled)", err)
		return nil, nil
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("⚠️ Failed to get messaging client: %v", err)
		return nil, nil
	}

	log.Println("✅ Firebase FCM initialized")
	return &NotificationService{
		client:     client,
		deviceRepo: deviceRepo,
	}, nil
}

// SendNotification pushes a platform notification (gift or message) to every
// device the receiver registered.
func (s *NotificationService) SendNotification(ctx context.Context, receiver chain.Address, n model.NotificationCreatedEvent) error {
	if s == nil || s.client == nil {
		return nil
	}

	devices, err := s.deviceRepo.FindByAddress(string(receiver))
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}

	title := "You received a gift 🎁"
	body := fmt.Sprintf("%s sent you a birthday gift", n.Sender)
	kind := "gift"
	if n.NotificationType == model.NotificationMessage {
		title = "New birthday message 💬"
		body = fmt.Sprintf("%s sent you a message", n.Sender)
		kind = "message"
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.FCMToken)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"type":   kind,
			"sender": string(n.Sender),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ClickAction: "FLUTTER_NOTIFICATION_CLICK",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	br, err := s.client.SendMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending multicast message: %w", err)
	}

	if br.FailureCount > 0 {
		for idx, resp := range br.Responses {
			if !resp.Success {
				log.Printf("⚠️ FCM failure for token %s: %v", tokens[idx], resp.Error)
				// Drop tokens FCM no longer accepts
				if messaging.IsUnregistered(resp.Error) {
					_ = s.deviceRepo.Remove(tokens[idx])
				}
			}
		}
	}

	return nil
}
