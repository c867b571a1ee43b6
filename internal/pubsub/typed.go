package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Event[T] wraps a topic name and provides type-safe publishing and subscribing.
type Event[T any] struct {
	topicName string
	info      EventInfo
}

// EventInfo documents a registered event for tooling.
type EventInfo struct {
	Name          string
	Description   string
	TypeName      string
	PayloadFields []string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]EventInfo{}
)

// NewEvent creates a typed event and records it in the package registry.
// Payload field names are derived from the json tags of T.
// Defining the same topic twice panics since events are declared at package level.
func NewEvent[T any](name string, description string) Event[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	fields := make([]string, 0)
	typeName := ""
	if t != nil {
		typeName = t.Name()
		if t.Kind() == reflect.Struct {
			for i := 0; i < t.NumField(); i++ {
				tag := t.Field(i).Tag.Get("json")
				if tag == "" || tag == "-" {
					continue
				}
				name, _, _ := strings.Cut(tag, ",")
				fields = append(fields, name)
			}
		}
	}

	info := EventInfo{
		Name:          name,
		Description:   description,
		TypeName:      typeName,
		PayloadFields: fields,
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q already defined", name))
	}
	registry[name] = info

	return Event[T]{topicName: name, info: info}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Info returns the event's documentation record.
func (e Event[T]) Info() EventInfo {
	return e.info
}

// Events lists every registered event sorted by name.
func Events() []EventInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]EventInfo, 0, len(registry))
	for _, info := range registry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], clientID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.Publish(ctx, Message{
		Topic:    event.Name(),
		ClientID: clientID,
		Payload:  data,
	})
}

// Subscribe registers a handler that receives decoded payloads of the event's type.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, clientID string, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Name(), err)
		}
		return handler(ctx, msg.ClientID, payload)
	})
}
