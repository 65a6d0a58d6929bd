// Package telegram routes bot updates: photo messages are captioned with
// the same engine and prompt the HTTP service uses.
package telegram

import (
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"caption-api/api/internal/caption"
)

type Router struct {
	Bot       *tgbotapi.BotAPI
	Captioner caption.Captioner

	// HTTPClient downloads photo payloads from the Bot API file endpoint.
	HTTPClient *http.Client
}

func NewRouter(bot *tgbotapi.BotAPI, c caption.Captioner) *Router {
	return &Router{
		Bot:        bot,
		Captioner:  c,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}

	r.send(cid, "Send a photo and I will reply with a caption.")
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send me a photo and I will describe it.\nCommands: /health")
	case "health":
		r.send(cid, "✅ OK: "+r.Captioner.Name()+" ("+r.Captioner.GetModel()+")")
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

// Telegram caps messages at 4096 chars; stay under it with room for the
// ellipsis.
func clipMessage(s string) string {
	const max = 3900
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
