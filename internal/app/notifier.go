package app

import (
	"homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers messages to the single configured chat. Transport
// failures are logged and swallowed: the polling loop must never stop
// because Telegram was unreachable.
type Notifier struct {
	client telegram.Client
	chatID int64
	log    *logrus.Logger
}

func NewNotifier(client telegram.Client, chatID int64, log *logrus.Logger) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		log:    log,
	}
}

// Notify sends text to the configured chat.
func (n *Notifier) Notify(text string) {
	if err := n.client.SendMessage(n.chatID, text); err != nil {
		n.log.WithError(err).Error("Failed to send message to Telegram chat")
		return
	}
	n.log.WithField("chat_id", n.chatID).Info("Message sent to Telegram chat")
}
