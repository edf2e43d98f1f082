package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PotionGacha_Go/internal/config"
)

const (
	waitForDBMaxRetries    = 30
	waitForDBRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, cfg *config.Config, args []string) error {
	PrintHeader("Waiting for database...")

	var lastErr error
	for i := 0; i < waitForDBMaxRetries; i++ {
		pool, err := openPool(ctx, cfg)
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}
		lastErr = err

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitForDBMaxRetries, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitForDBRetryInterval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitForDBMaxRetries, lastErr)
}
