package services

import (
	"encoding/json"
	"fmt"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationService publishes workflow notifications to RabbitMQ and
// consumes them back into the notifications table. When the broker is
// unavailable the message is written to the table directly.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	rabbitMQ         *RabbitMQService
	stopChan         chan bool
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, rabbitMQ *RabbitMQService) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		rabbitMQ:         rabbitMQ,
		stopChan:         make(chan bool),
	}
}

// Notify queues a notification for a user. Failures are logged, never
// propagated: notification delivery must not fail the triggering operation.
func (s *NotificationService) Notify(userID, notifType, title, message string, metadata map[string]interface{}) {
	msg := models.NotificationMessage{
		UserID:   userID,
		Type:     notifType,
		Title:    title,
		Message:  message,
		Metadata: metadata,
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.PublishJSON(NotificationQueue, msg); err == nil {
			return
		} else {
			logrus.Warnf("Failed to publish notification, falling back to direct insert: %v", err)
		}
	}

	if err := s.persist(&msg); err != nil {
		logrus.Errorf("Failed to persist notification for user %s: %v", userID, err)
	}
}

// StartConsumer starts consuming notification messages from RabbitMQ
func (s *NotificationService) StartConsumer() error {
	if s.rabbitMQ == nil {
		return fmt.Errorf("rabbitmq service not available")
	}

	msgs, err := s.rabbitMQ.channel.Consume(
		NotificationQueue, // queue
		"",                // consumer
		true,              // auto-ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logrus.Info("RabbitMQ consumer started for notifications queue")

	go func() {
		for {
			select {
			case <-s.stopChan:
				logrus.Info("Notification consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					logrus.Warn("RabbitMQ channel closed")
					return
				}

				if err := s.processMessage(msg.Body); err != nil {
					logrus.Errorf("Failed to process notification message: %v", err)
				}
			}
		}
	}()

	return nil
}

// StopConsumer stops the consumer
func (s *NotificationService) StopConsumer() {
	close(s.stopChan)
}

// processMessage persists a queued notification message
func (s *NotificationService) processMessage(body []byte) error {
	var msg models.NotificationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal notification message: %w", err)
	}
	return s.persist(&msg)
}

func (s *NotificationService) persist(msg *models.NotificationMessage) error {
	var metadataJSON models.JSON
	if msg.Metadata != nil {
		metadataBytes, _ := json.Marshal(msg.Metadata)
		json.Unmarshal(metadataBytes, &metadataJSON)
	}

	notification := &models.Notification{
		UserID:   msg.UserID,
		Type:     msg.Type,
		Title:    msg.Title,
		Message:  msg.Message,
		Metadata: metadataJSON,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetUserNotifications returns a user's notifications with pagination
func (s *NotificationService) GetUserNotifications(userID string, page, pageSize int) ([]models.Notification, int64, error) {
	return s.notificationRepo.GetByUser(userID, page, pageSize)
}

// CountUnread counts a user's unread notifications
func (s *NotificationService) CountUnread(userID string) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(id, userID string) error {
	return s.notificationRepo.MarkRead(id, userID)
}

// MarkAllRead marks all of a user's notifications as read
func (s *NotificationService) MarkAllRead(userID string) error {
	return s.notificationRepo.MarkAllRead(userID)
}
