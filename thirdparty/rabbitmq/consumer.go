package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Start consumes index requests until ctx is done or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		constant.ItemIndexQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var indexMsg ItemIndexMessage
				if err := json.Unmarshal(msg.Body, &indexMsg); err != nil || indexMsg.ItemCode == "" {
					logger.Error("[Consumer] dropping malformed message", zap.ByteString("body", msg.Body))
					_ = msg.Ack(false)
					continue
				}

				if err := c.CallReindexAPI(ctx, indexMsg.ItemCode); err != nil {
					logger.Error("[Consumer] reindex failed", zap.String("item_code", indexMsg.ItemCode), zap.String("error", err.Error()))
					// Negative ack to requeue
					_ = msg.Nack(false, true)
					continue
				}

				_ = msg.Ack(false)
				logger.Info("[Consumer] item reindexed", zap.String("item_code", indexMsg.ItemCode))
			}
		}
	}()

	return nil
}

// CallReindexAPI asks the storefront service to refresh one item. 4xx answers
// are final and not retried.
func (c *Consumer) CallReindexAPI(ctx context.Context, itemCode string) error {
	endpoint := fmt.Sprintf("%s/internal/v1/index/items/%s", c.apiURL, url.PathEscape(itemCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", constant.InternalServiceHeaderVal)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 400 {
		logger.Warn("[Consumer] reindex rejected", zap.String("item_code", itemCode), zap.Int("status", resp.StatusCode))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
