package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"backend_tigo/config"
	"backend_tigo/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Notifier alerts operators about events that need attention in the field
type Notifier interface {
	NotifyCriticalIncident(ctx context.Context, incidencia models.Incidencia, cliente *models.Cliente) error
}

// NopNotifier drops every alert
type NopNotifier struct{}

func (NopNotifier) NotifyCriticalIncident(context.Context, models.Incidencia, *models.Cliente) error {
	return nil
}

// TelegramNotifier posts alerts to the field-ops Telegram chat
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *logrus.Logger
}

// NewNotifier returns a Telegram notifier, or a NopNotifier when no bot token is configured
func NewNotifier(cfg config.TelegramConfig, logger *logrus.Logger) (Notifier, error) {
	if cfg.BotToken == "" {
		logger.Info("telegram bot token not set, incident alerts disabled")
		return NopNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	bot.Debug = false

	logger.WithField("bot", bot.Self.UserName).Info("telegram bot authorized")
	return &TelegramNotifier{bot: bot, chatID: cfg.ChatID, logger: logger}, nil
}

// CriticalIncidentMessage renders the HTML alert for a critical incident
func CriticalIncidentMessage(incidencia models.Incidencia, cliente *models.Cliente) string {
	var b strings.Builder
	b.WriteString("🚨 <b>Incidencia crítica registrada</b>\n")
	fmt.Fprintf(&b, "<b>Cliente:</b> %s\n", html.EscapeString(CustomerLabel(cliente)))
	if cliente != nil && cliente.Distrito != "" {
		fmt.Fprintf(&b, "<b>Distrito:</b> %s\n", html.EscapeString(cliente.Distrito))
	}
	fmt.Fprintf(&b, "<b>Tipo:</b> %s\n", html.EscapeString(incidencia.TipoIncidencia))
	fmt.Fprintf(&b, "<b>Fecha:</b> %s\n", incidencia.Fecha.String())
	fmt.Fprintf(&b, "<b>Descripción:</b> %s", html.EscapeString(incidencia.Descripcion))
	return b.String()
}

func (n *TelegramNotifier) NotifyCriticalIncident(ctx context.Context, incidencia models.Incidencia, cliente *models.Cliente) error {
	msg := tgbotapi.NewMessage(n.chatID, CriticalIncidentMessage(incidencia, cliente))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	n.logger.WithField("incidencia", incidencia.ID).Info("critical incident alert sent")
	return nil
}
