// Package redis guarda as sessões administrativas no Redis, compartilhadas entre instâncias.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client embrulha o cliente go-redis com verificação de saúde.
type Client struct {
	*redis.Client
}

// New conecta a partir de uma URL redis:// e testa com PING.
func New(ctx context.Context, url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return &Client{Client: client}, nil
}

// Health usado pelo /health.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
