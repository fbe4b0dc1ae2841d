package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/gallery-bot/internal/models"
)

// Bot is the Telegram face of the turn controller: it converts updates into
// transport-independent activities and sends the composed replies back.
type Bot struct {
	api        *tgbotapi.BotAPI
	controller *Controller
	logger     *zap.Logger
}

func New(token string, controller *Controller, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:        api,
		controller: controller,
		logger:     logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

// Stop ends the update loop; Start returns once in-flight updates drain.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	act := b.toActivity(message)
	replies := b.controller.HandleTurn(ctx, act)
	b.sendReplies(message.Chat.ID, replies)
}

// toActivity maps a Telegram message onto the turn contract: new chat
// members become the membership-added trigger, the largest photo size
// becomes an attachment, captions stand in for text.
func (b *Bot) toActivity(message *tgbotapi.Message) models.Activity {
	act := models.Activity{
		ConversationID: strconv.FormatInt(message.Chat.ID, 10),
		UserID:         message.From.ID,
		Text:           message.Text,
	}
	if act.Text == "" && message.Caption != "" {
		act.Text = message.Caption
	}

	for _, member := range message.NewChatMembers {
		act.MembersAdded = append(act.MembersAdded, member.UserName)
	}

	if len(message.Photo) > 0 {
		// Telegram sends several sizes of the same photo; take the largest.
		photo := message.Photo[len(message.Photo)-1]
		if data, err := b.downloadFile(photo.FileID); err != nil {
			b.logger.Error("Failed to download photo",
				zap.Error(err),
				zap.String("file_id", photo.FileID))
		} else {
			act.Attachments = append(act.Attachments, models.Attachment{
				Name: photo.FileID + ".jpg",
				Data: data,
			})
		}
	}

	if message.Document != nil {
		if data, err := b.downloadFile(message.Document.FileID); err != nil {
			b.logger.Error("Failed to download document",
				zap.Error(err),
				zap.String("file_id", message.Document.FileID))
		} else {
			act.Attachments = append(act.Attachments, models.Attachment{
				Name: message.Document.FileName,
				Data: data,
			})
		}
	}

	return act
}

func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file url: %w", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.sendReplies(message.Chat.ID, b.controller.Greeting())
	case "help":
		b.handleHelp(message)
	case "language":
		b.handleLanguage(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/language - Reset your conversation language

You can send:
- A photo of a painting
- A URL pointing to an image of a painting
- Questions about the identified painting (author, date, name, style, technique)
- General questions about art`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleLanguage(ctx context.Context, message *tgbotapi.Message) {
	conversationID := strconv.FormatInt(message.Chat.ID, 10)
	if err := b.controller.ResetLanguage(ctx, conversationID, message.From.ID); err != nil {
		b.logger.Error("Failed to reset language",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendMessage(message.Chat.ID, "Sorry, I couldn't reset your language. Please try again.")
		return
	}
	b.sendMessage(message.Chat.ID, "Language reset. I'll detect it again from your next message.")
}

func (b *Bot) sendReplies(chatID int64, replies []models.Reply) {
	for _, reply := range replies {
		if reply.ImageURL != "" {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(reply.ImageURL))
			photo.Caption = reply.Text
			if _, err := b.api.Send(photo); err != nil {
				b.logger.Error("Failed to send photo reply",
					zap.Error(err),
					zap.Int64("chat_id", chatID),
					zap.String("image_url", reply.ImageURL))
			}
			continue
		}
		b.sendMessage(chatID, reply.Text)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
