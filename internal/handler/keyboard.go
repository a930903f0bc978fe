package handler

import (
	"github.com/entoni-coder/telegrambot/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbRegister  = "register"
	cbInfo      = "info"
	cbBuySpins  = "buy_spins"
	cbBuyPrefix = "buy_"
	cbStats     = "stats"
	cbRestart   = "restart"
)

// The bot API types have no web_app field on inline buttons, so the main
// menu is encoded with our own markup.
type webAppInfo struct {
	URL string `json:"url"`
}

type inlineButton struct {
	Text         string      `json:"text"`
	CallbackData string      `json:"callback_data,omitempty"`
	WebApp       *webAppInfo `json:"web_app,omitempty"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

func greetingKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📝 Registrati", cbRegister)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("ℹ️ Info", cbInfo)),
	)
}

// menuKeyboard is the registered user's menu. The wheel button is left out
// when no web app is configured.
func menuKeyboard(webAppURL string) inlineKeyboard {
	var rows [][]inlineButton
	if webAppURL != "" {
		rows = append(rows, []inlineButton{{Text: "🎡 Gira la Ruota", WebApp: &webAppInfo{URL: webAppURL}}})
	}
	rows = append(rows,
		[]inlineButton{{Text: "🛒 Compra Spin", CallbackData: cbBuySpins}},
		[]inlineButton{{Text: "📊 Le mie statistiche", CallbackData: cbStats}},
		[]inlineButton{{Text: "🔄 Restart Registrazione", CallbackData: cbRestart}},
	)
	return inlineKeyboard{InlineKeyboard: rows}
}

func packagesKeyboard(packages []model.SpinPackage) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(packages))
	for _, p := range packages {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(p.Label, cbBuyPrefix+p.Key))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons)
}

func phoneKeyboard() tgbotapi.ReplyKeyboardMarkup {
	btn := tgbotapi.NewKeyboardButton(textSharePhone)
	btn.RequestContact = true
	keyboard := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(btn))
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}
