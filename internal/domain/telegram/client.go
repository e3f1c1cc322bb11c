package telegram

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot
// library. The bot only ever sends plain text to one chat, so the port
// carries no send options.
type Client interface {
	SendMessage(recipientChatID int64, text string) error
}
