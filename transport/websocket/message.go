package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

const (
	messageTypeJoin  = "join"
	messageTypePlace = "place"
	messageTypeMove  = "move"
	messageTypeReset = "reset"
)

const placementLimitMessage = "You have reached the monster limit!"

// Message is an inbound envelope. Payload is decoded once its type is known.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Command is one of JoinCommand, PlaceCommand, MoveCommand or ResetCommand.
type Command interface {
	command()
}

type JoinCommand struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type PlaceCommand struct {
	RoomID   string          `json:"roomId"`
	PlayerID string          `json:"playerId"`
	Position entity.Position `json:"position"`
	Kind     entity.Kind     `json:"kind"`
}

type MoveCommand struct {
	RoomID   string          `json:"roomId"`
	PlayerID string          `json:"playerId"`
	From     entity.Position `json:"from"`
	To       entity.Position `json:"to"`
}

type ResetCommand struct {
	RoomID string `json:"roomId"`
}

func (JoinCommand) command()  {}
func (PlaceCommand) command() {}
func (MoveCommand) command()  {}
func (ResetCommand) command() {}

// Decode - turns an envelope into a command. Unknown types yield ErrUnknownCommand.
func Decode(message *Message) (Command, error) {
	switch message.Type {
	case messageTypeJoin:
		var cmd JoinCommand
		if err := unmarshalPayload(message, &cmd); err != nil {
			return nil, err
		}

		return cmd, nil
	case messageTypePlace:
		var cmd PlaceCommand
		if err := unmarshalPayload(message, &cmd); err != nil {
			return nil, err
		}

		kind, err := entity.ParseKind(string(cmd.Kind))
		if err != nil {
			return nil, err
		}

		cmd.Kind = kind

		return cmd, nil
	case messageTypeMove:
		var cmd MoveCommand
		if err := unmarshalPayload(message, &cmd); err != nil {
			return nil, err
		}

		return cmd, nil
	case messageTypeReset:
		var cmd ResetCommand
		if err := unmarshalPayload(message, &cmd); err != nil {
			return nil, err
		}

		return cmd, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, message.Type)
	}
}

func unmarshalPayload(message *Message, target any) error {
	if len(message.Payload) == 0 {
		return fmt.Errorf("%w: %s has no payload", apperror.ErrInvalidPayload, message.Type)
	}

	if err := json.Unmarshal(message.Payload, target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return nil
}
