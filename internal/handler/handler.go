package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/entoni-coder/telegrambot/internal/logger"
	"github.com/entoni-coder/telegrambot/internal/repo/errs"
	"github.com/entoni-coder/telegrambot/internal/service"
	"github.com/entoni-coder/telegrambot/internal/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	service service.Service
	bot     Sender
	states  state.Store

	webAppURL string
	adminID   int64
}

func New(bot Sender, service service.Service, states state.Store, webAppURL string, adminID int64) Handler {
	return Handler{
		service:   service,
		bot:       bot,
		states:    states,
		webAppURL: webAppURL,
		adminID:   adminID,
	}
}

// Start 🚀 handles updates one by one until ctx is done or the channel closes.
func (h *Handler) Start(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	logger.Debug().Int("update_id", update.UpdateID).Msg("update received")

	switch {
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	}
}

// 💬 Messages: commands, contacts and the wallet address during registration
func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	var err error
	switch {
	case msg.Contact != nil:
		err = h.savePhone(ctx, msg)

	case msg.IsCommand():
		switch msg.Command() {
		case "start":
			h.start(ctx, msg.Chat.ID, msg.From.ID)
		case "restart":
			err = h.restart(ctx, msg.Chat.ID, msg.From.ID)
		case "users":
			if h.adminID != 0 && msg.From.ID == h.adminID {
				err = h.listUsers(ctx, msg)
			}
		}

	default:
		var st state.State
		st, err = h.states.Get(ctx, msg.From.ID)
		if err == nil && st == state.Register {
			err = h.completeRegistration(ctx, msg)
		}
	}

	if err != nil {
		h.fail(msg.Chat.ID, msg.From.ID, "message", err)
	}
}

// ⚙️ Button presses
func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		logger.Warn().Err(err).Str("callback", cb.Data).Msg("failed to answer callback")
	}

	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return
	}

	var err error
	switch data := cb.Data; {
	case data == cbRegister:
		err = h.askWallet(ctx, cb)
	case data == cbInfo:
		err = h.edit(cb, textInfo, nil)
	case data == cbBuySpins:
		err = h.showPackages(ctx, cb)
	case data == cbStats:
		err = h.showStats(ctx, cb)
	case data == cbRestart:
		err = h.restart(ctx, cb.Message.Chat.ID, cb.From.ID)
	case strings.HasPrefix(data, cbBuyPrefix):
		err = h.buyPackage(ctx, cb, strings.TrimPrefix(data, cbBuyPrefix))
	}

	if err != nil {
		h.fail(cb.Message.Chat.ID, cb.From.ID, cb.Data, err)
	}
}

// start answers /start. Failures never escape: they are logged and the user
// gets the generic error text.
func (h *Handler) start(ctx context.Context, chatID, userID int64) {
	logger.Info().Int64("user_id", userID).Msg("/start")

	if err := h.greet(ctx, chatID, userID); err != nil {
		h.fail(chatID, userID, "/start", err)
	}
}

func (h *Handler) greet(ctx context.Context, chatID, userID int64) error {
	user, err := h.service.GetUser(ctx, userID)
	if errors.Is(err, errs.ErrUserNotFound) {
		msg := tgbotapi.NewMessage(chatID, textGreeting)
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.ReplyMarkup = greetingKeyboard()
		return h.send(msg)
	}
	if err != nil {
		return err
	}

	text := fmt.Sprintf(textWelcomeBack,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, user.FirstName), user.Balance, user.Spins)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = menuKeyboard(h.webAppURL)
	return h.send(msg)
}

// restart drops the user's record and conversation, then greets again.
func (h *Handler) restart(ctx context.Context, chatID, userID int64) error {
	logger.Info().Int64("user_id", userID).Msg("/restart")

	if err := h.service.ResetUser(ctx, userID); err != nil {
		return err
	}
	if err := h.states.Clear(ctx, userID); err != nil {
		return fmt.Errorf("error states.Clear: %w", err)
	}

	h.start(ctx, chatID, userID)
	return nil
}

func (h *Handler) askWallet(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	_, err := h.service.GetUser(ctx, cb.From.ID)
	if err == nil {
		return h.greet(ctx, cb.Message.Chat.ID, cb.From.ID)
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	if err := h.states.Set(ctx, cb.From.ID, state.Register); err != nil {
		return fmt.Errorf("error states.Set: %w", err)
	}
	return h.edit(cb, textAskWallet, nil)
}

func (h *Handler) completeRegistration(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := h.service.RegisterUser(ctx, service.RegisterParams{
		UserID:    msg.From.ID,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Username:  msg.From.UserName,
		Wallet:    msg.Text,
	})
	switch {
	case errors.Is(err, service.ErrInvalidWallet):
		return h.send(tgbotapi.NewMessage(msg.Chat.ID, textInvalidWallet))

	case errors.Is(err, errs.ErrUserAlreadyExists):
		if err := h.states.Clear(ctx, msg.From.ID); err != nil {
			return fmt.Errorf("error states.Clear: %w", err)
		}
		return h.greet(ctx, msg.Chat.ID, msg.From.ID)

	case err != nil:
		return err
	}

	logger.Info().Int64("user_id", user.ID).Str("referral_code", user.ReferralCode).Msg("user registered")

	if err := h.states.Clear(ctx, msg.From.ID); err != nil {
		return fmt.Errorf("error states.Clear: %w", err)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(textRegistered, user.Balance, user.Spins, user.ReferralCode))
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = phoneKeyboard()
	if err := h.send(reply); err != nil {
		return err
	}

	return h.greet(ctx, msg.Chat.ID, msg.From.ID)
}

func (h *Handler) savePhone(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.Contact.UserID != msg.From.ID {
		return h.send(tgbotapi.NewMessage(msg.Chat.ID, textWrongContact))
	}

	text := textPhoneSaved
	err := h.service.UpdatePhone(ctx, msg.From.ID, msg.Contact.PhoneNumber)
	if errors.Is(err, errs.ErrUserNotFound) {
		text = textMustRegister
	} else if err != nil {
		return err
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	return h.send(reply)
}

func (h *Handler) showPackages(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	_, err := h.service.GetUser(ctx, cb.From.ID)
	if errors.Is(err, errs.ErrUserNotFound) {
		return h.edit(cb, textMustRegister, nil)
	}
	if err != nil {
		return err
	}

	if err := h.states.Set(ctx, cb.From.ID, state.BuySpins); err != nil {
		return fmt.Errorf("error states.Set: %w", err)
	}

	keyboard := packagesKeyboard(h.service.Packages())
	return h.edit(cb, textBuySpins, &keyboard)
}

// buyPackage records a purchase request. Buttons pressed outside of the
// catalog step bring the catalog back instead.
func (h *Handler) buyPackage(ctx context.Context, cb *tgbotapi.CallbackQuery, key string) error {
	st, err := h.states.Get(ctx, cb.From.ID)
	if err != nil {
		return fmt.Errorf("error states.Get: %w", err)
	}
	if st != state.BuySpins {
		return h.showPackages(ctx, cb)
	}

	pkg, txID, err := h.service.RequestSpinPurchase(ctx, cb.From.ID, key)
	if errors.Is(err, errs.ErrUserNotFound) {
		return h.edit(cb, textMustRegister, nil)
	}
	if err != nil {
		return err
	}

	logger.Info().
		Int64("user_id", cb.From.ID).
		Str("package", pkg.Key).
		Int64("tx_id", txID).
		Msg("spin purchase requested")

	if err := h.states.Set(ctx, cb.From.ID, state.Idle); err != nil {
		return fmt.Errorf("error states.Set: %w", err)
	}

	return h.edit(cb, fmt.Sprintf(textPurchasePending, pkg.Label, txID), nil)
}

func (h *Handler) showStats(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	user, err := h.service.GetUser(ctx, cb.From.ID)
	if errors.Is(err, errs.ErrUserNotFound) {
		return h.edit(cb, textMustRegister, nil)
	}
	if err != nil {
		return err
	}

	text := fmt.Sprintf(textStats,
		user.Balance,
		user.Spins,
		user.ReferralCode,
		user.Wallet,
		user.RegisteredAt.Format("02.01.2006 15:04"),
	)
	return h.edit(cb, text, nil)
}

// listUsers sends the registered users to the admin, split to stay under the
// Telegram message limit (4096).
func (h *Handler) listUsers(ctx context.Context, msg *tgbotapi.Message) error {
	users, err := h.service.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return h.send(tgbotapi.NewMessage(msg.Chat.ID, textNoUsers))
	}

	const maxLen = 4000
	var messages []string
	current := ""

	for i, u := range users {
		username := "-"
		if u.Username != nil {
			username = "@" + *u.Username
		}
		line := fmt.Sprintf("%d. ID: %d, %s, Saldo: %d, Spin: %d, Registrato: %s\n",
			i+1,
			u.ID,
			username,
			u.Balance,
			u.Spins,
			u.RegisteredAt.Format("2006-01-02"),
		)
		if len(current)+len(line) > maxLen {
			messages = append(messages, current)
			current = line
		} else {
			current += line
		}
	}
	if current != "" {
		messages = append(messages, current)
	}

	for i, text := range messages {
		message := tgbotapi.NewMessage(msg.Chat.ID, text)
		if i == 0 {
			message.ReplyToMessageID = msg.MessageID
		}
		if err := h.send(message); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) edit(cb *tgbotapi.CallbackQuery, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = markup
	return h.send(edit)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		return fmt.Errorf("error bot.Send: %w", err)
	}
	return nil
}

func (h *Handler) fail(chatID, userID int64, action string, err error) {
	logger.Error().
		Err(err).
		Int64("user_id", userID).
		Str("action", action).
		Msg("error handling update")

	if _, sendErr := h.bot.Send(tgbotapi.NewMessage(chatID, textError)); sendErr != nil {
		logger.Error().Err(sendErr).Int64("chat_id", chatID).Msg("failed to send error message")
	}
}
