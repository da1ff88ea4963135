// Package kv хранит JSON-блобы по ключу, перезаписывая значение целиком.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ключи хранилища
const (
	KeyFeaturedStores = "featuredStores"
	KeyLanguagePrefix = "language:"
)

var ErrNotFound = errors.New("key not found")

// Store хранилище ключ-значение
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON читает значение и декодирует его в dst
func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON кодирует значение и перезаписывает ключ
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
