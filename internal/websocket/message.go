package websocket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Carousel actions a client may send.
const (
	ActionNext  = "next"
	ActionPrev  = "prev"
	ActionGoTo  = "goto"
	ActionHover = "hover"
	ActionModal = "modal"
)

// Action is one inbound control message. The htmx ws extension adds a
// HEADERS object which is ignored, and may send numbers and booleans as strings.
type Action struct {
	Action string    `json:"action"`
	Index  *flexInt  `json:"index,omitempty"`
	On     *flexBool `json:"on,omitempty"`
}

// IndexValue returns the goto target.
func (a Action) IndexValue() int {
	if a.Index == nil {
		return 0
	}
	return int(*a.Index)
}

// OnValue returns the hover or modal flag.
func (a Action) OnValue() bool {
	return a.On != nil && bool(*a.On)
}

type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	*f = flexInt(n)
	return nil
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseBool(string(bytes.Trim(b, `"`)))
	if err != nil {
		return fmt.Errorf("on: %w", err)
	}
	*f = flexBool(v)
	return nil
}

// ParseAction decodes and checks a client frame.
func ParseAction(data []byte) (Action, error) {
	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		return Action{}, fmt.Errorf("decode action: %w", err)
	}
	switch a.Action {
	case ActionGoTo:
		if a.Index == nil {
			return Action{}, fmt.Errorf("action %q requires index", a.Action)
		}
	case ActionHover, ActionModal:
		if a.On == nil {
			return Action{}, fmt.Errorf("action %q requires on", a.Action)
		}
	}
	return a, nil
}
