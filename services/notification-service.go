package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"ticket-tracker/logging"
	"ticket-tracker/models"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// Notifier delivers messages to the notifications service over HTTP,
// guarded by a circuit breaker. Delivery is best effort: a failed
// send is logged and counted against the breaker, it never fails the
// operation that triggered it.
type Notifier struct {
	HTTPClient *http.Client
	Breaker    *gobreaker.CircuitBreaker
}

func NewNotifier(httpClient *http.Client, breaker *gobreaker.CircuitBreaker) *Notifier {
	return &Notifier{
		HTTPClient: httpClient,
		Breaker:    breaker,
	}
}

// NotifyBoard fans a message out to the board creator and every
// collaborator.
func (n *Notifier) NotifyBoard(board *models.Board, message string) {
	if n == nil || board == nil {
		return
	}
	baseURL := os.Getenv("NOTIFICATIONS_SERVICE_URL")
	if baseURL == "" {
		logging.Logger.Debugf("Event ID: NOTIFICATIONS_DISABLED, Description: NOTIFICATIONS_SERVICE_URL not set, skipping notification for board %s", board.ID.Hex())
		return
	}

	n.send(baseURL, models.Notification{
		ID:        uuid.New().String(),
		UserID:    board.Creator.UID,
		Email:     board.Creator.Email,
		Message:   message,
		CreatedAt: time.Now(),
	})
	for _, c := range board.Collaborators {
		if c.Email == board.Creator.Email {
			continue
		}
		n.send(baseURL, models.Notification{
			ID:        uuid.New().String(),
			Email:     c.Email,
			Message:   message,
			CreatedAt: time.Now(),
		})
	}
}

func (n *Notifier) send(baseURL string, notification models.Notification) {
	body, err := json.Marshal(notification)
	if err != nil {
		logging.Logger.Warnf("Event ID: NOTIFICATION_MARSHAL_FAILED, Description: Failed to marshal notification for %s: %v", notification.Email, err)
		return
	}

	_, err = n.Breaker.Execute(func() (interface{}, error) {
		resp, err := n.HTTPClient.Post(baseURL+"/api/notifications", "application/json", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("notifications service returned %s", resp.Status)
		}
		return nil, nil
	})
	if err != nil {
		logging.Logger.Warnf("Event ID: NOTIFICATION_SEND_FAILED, Description: Failed to send notification to %s: %v", notification.Email, err)
	}
}
