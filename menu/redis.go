package menu

import (
	"context"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const itemsKey = "menu:items"

// Item is one menu entry as stored in Redis.
type Item struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// RedisProvider reads the menu from a Redis list of JSON items and formats
// it for the prompt. Any failure, or an empty list, yields Fallback; menu
// trouble must never block a turn.
type RedisProvider struct {
	client *redis.Client
}

// Interface compliance check.
var _ Provider = (*RedisProvider)(nil)

// NewRedisProvider wraps an existing Redis client.
func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

// MenuText loads and formats the menu listing.
func (rp *RedisProvider) MenuText(ctx context.Context) string {
	if rp.client == nil {
		return Fallback
	}

	entries, err := rp.client.LRange(ctx, itemsKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		if err != nil {
			log.Printf("menu: load failed, using fallback: %v", err)
		}
		return Fallback
	}

	return Format(decode(entries))
}

func decode(entries []string) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		var item Item
		if err := sonic.Unmarshal([]byte(entry), &item); err != nil || item.Name == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// Format renders items as the listing the ordering prompt embeds.
func Format(items []Item) string {
	if len(items) == 0 {
		return Fallback
	}
	var b strings.Builder
	b.WriteString("Restaurant Menu:\n")
	for _, item := range items {
		b.WriteString("- " + item.Name + " ($" + item.Price + ") - " + item.Description + "\n")
	}
	return b.String()
}
