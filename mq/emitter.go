package mq

import (
	"context"
	"encoding/json"
	"log"

	"tripweaver/rdx"
)

const channel = "lifecycle-events"

// Index is a lifecycle event published for downstream consumers
// (indexers, analytics). Delivery is best-effort; emitting never fails
// the request that triggered it.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	UserId     string `json:"user_id,omitempty"`
}

// Emit publishes a lifecycle event to Redis.
func Emit(ctx context.Context, eventName string, content Index) {
	if rdx.Conn == nil {
		return
	}
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("mq: failed to marshal %s event: %v", eventName, err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("mq: failed to publish %s event: %v", eventName, err)
	}
}
