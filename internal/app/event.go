package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
)

var ErrUnknownMessageType = errors.New("unrecognized event type")

// MessageType says why AWS Config invoked the rule.
type MessageType int

const (
	Manual MessageType = iota
	Scheduled
	ResourceChange
)

func (m MessageType) String() string {
	switch m {
	case Manual:
		return constants.MessageTypeNull
	case Scheduled:
		return constants.MessageTypeScheduled
	case ResourceChange:
		return constants.MessageTypeChange
	}
	return fmt.Sprintf("MessageType(%d)", int(m))
}

// ParseMessageType maps the invoking event's messageType onto a MessageType.
// An empty value or the literal "Null" is a manual run.
func ParseMessageType(s string) (MessageType, error) {
	switch s {
	case "", constants.MessageTypeNull:
		return Manual, nil
	case constants.MessageTypeScheduled:
		return Scheduled, nil
	case constants.MessageTypeChange:
		return ResourceChange, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMessageType, s)
}

type invokingEvent struct {
	MessageType *string `json:"messageType"`
}

// DecodeInvokingEvent parses the serialized invokingEvent payload of a Config event.
func DecodeInvokingEvent(raw string) (MessageType, error) {
	if raw == "" {
		return 0, errors.New("invokingEvent is empty")
	}

	var event invokingEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return 0, fmt.Errorf("failed to decode invokingEvent: %w", err)
	}

	if event.MessageType == nil {
		return Manual, nil
	}
	return ParseMessageType(*event.MessageType)
}
