// internal/service/notifier.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/config"
	"github.com/mizuki1024/eitango-webapp/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Notifier は学習者への通知送信の抽象です。配信チャネルの詳細は
// 実装に閉じ、呼び出し側は成否だけを見ます。
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string) error
}

// --- LogNotifier ---

// LogNotifier は開発用にログへ出力するだけの実装です。
type LogNotifier struct{}

func (n *LogNotifier) Notify(ctx context.Context, userID int64, message string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Notification (LogNotifier) ---", "user_id", userID, "message", message)
	return nil
}

// --- LINENotifier ---

// LINENotifier は LINE Messaging API のプッシュ送信を行う実装です。
type LINENotifier struct {
	cfg    *config.LINEConfig
	client *http.Client
}

func NewLINENotifier(cfg *config.LINEConfig) *LINENotifier {
	return &LINENotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type linePushRequest struct {
	To       string        `json:"to"`
	Messages []lineMessage `json:"messages"`
}

type lineMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (n *LINENotifier) Notify(ctx context.Context, userID int64, message string) error {
	logger := middleware.GetLogger(ctx)

	payload := linePushRequest{
		To:       strconv.FormatInt(userID, 10),
		Messages: []lineMessage{{Type: "text", Text: message}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("LINENotifier.Notify: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("LINENotifier.Notify: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.AccessToken)

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Error("Failed to push LINE message", "error", err, "user_id", userID)
		return fmt.Errorf("LINENotifier.Notify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logger.Error("LINE push rejected", "status", resp.StatusCode, "body", string(respBody), "user_id", userID)
		return fmt.Errorf("LINENotifier.Notify: unexpected status %d", resp.StatusCode)
	}

	logger.Info("LINE notification sent", "user_id", userID)
	return nil
}

// --- SESNotifier ---

// SESNotifier は AWS SES でリマインダーをメール配信する実装です。
// 宛先は設定の固定アドレス（運用者ないし転送用メールボックス）です。
type SESNotifier struct {
	client *sesv2.Client
	cfg    *config.SESConfig
}

// NewSESNotifier は設定に応じて認証方法を切り替えてSESクライアントを生成します。
func NewSESNotifier(cfg *config.SESConfig) *SESNotifier {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.Region))

	switch cfg.AuthType {
	case "static_credentials":
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			slog.Error("SES auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			panic("missing static credentials for SES")
		}
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role":
		// SDKが自動で認証情報を解決する
	default:
		slog.Warn("Unknown SES auth_type specified, defaulting to IAM Role.", "type", cfg.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for SES", "error", err)
		panic(err)
	}

	return &SESNotifier{
		client: sesv2.NewFromConfig(awsCfg),
		cfg:    cfg,
	}
}

func (n *SESNotifier) Notify(ctx context.Context, userID int64, message string) error {
	logger := middleware.GetLogger(ctx)

	body := fmt.Sprintf("ユーザーID: %d\n%s", userID, message)
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.cfg.From),
		Destination: &types.Destination{
			ToAddresses: []string{n.cfg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String("復習リマインダー"),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		logger.Error("Failed to send reminder via SES", "error", err, "user_id", userID)
		return fmt.Errorf("SESNotifier.Notify: %w", err)
	}

	logger.Info("Reminder sent via SES", "user_id", userID)
	return nil
}

// --- NewNotifier ファクトリ関数 ---

func NewNotifier(cfg *config.Config) Notifier {
	logger := slog.Default()
	switch cfg.Notifier.Type {
	case "line":
		logger.Info("Initializing LINE notifier...")
		return NewLINENotifier(&cfg.LINE)
	case "ses":
		logger.Info("Initializing SES notifier...")
		return NewSESNotifier(&cfg.SES)
	case "log":
		logger.Info("Initializing Log notifier...")
		return &LogNotifier{}
	default:
		logger.Warn("Unknown notifier type, defaulting to LogNotifier", "type", cfg.Notifier.Type)
		return &LogNotifier{}
	}
}
