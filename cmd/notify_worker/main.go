package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/config"
	"github.com/oksasatya/famjamjam/pkg/helpers"
	"github.com/oksasatya/famjamjam/pkg/mailer"
	"github.com/oksasatya/famjamjam/pkg/mailer/templates"
)

const prefetch = 16

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify", cfg.Env, cfg.LogLevel)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; notification worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotifyQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue, prefetch)
	if err != nil {
		logger.Fatalf("amqp consumer: %v", err)
	}
	defer consumer.Close()

	proc := &mailer.Processor{
		Sender: mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender),
		Site: templates.Site{
			URL:         cfg.SiteURL,
			CompanyName: cfg.CompanyName,
			SupportURL:  cfg.SupportURL,
		},
		Logger:      logger,
		SendTimeout: 15 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range consumer.Deliveries {
			outcome := proc.Handle(ctx, msg.Body)
			var ackErr error
			switch outcome {
			case mailer.Ack:
				ackErr = msg.Ack(false)
			case mailer.Reject:
				ackErr = msg.Reject(false)
			default:
				ackErr = msg.Nack(false, true)
			}
			if ackErr != nil {
				helpers.LogWarn(logger, "delivery acknowledgement failed", ackErr, logrus.Fields{"outcome": outcome.String()})
			}
		}
	}()

	logger.WithField("queue", consumer.Queue).Info("notification worker listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
		logger.Info("shutting down...")
	case <-done:
		logger.Warn("delivery channel closed")
		return
	}
	cancel()
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
