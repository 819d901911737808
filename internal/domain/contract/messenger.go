package contract

//go:generate mockgen -source=messenger.go -destination=../../../mocks/messenger_mock.go -package=mocks

import "context"

// CommandInfo is one entry of the command menu shown to users
type CommandInfo struct {
	Name        string
	Description string
}

// Messenger is the chat transport. Implementations must bound their own calls.
type Messenger interface {
	SendMessage(ctx context.Context, destination, text string) (string, error)
	PinMessage(ctx context.Context, destination, messageID string) error
	UnpinMessage(ctx context.Context, destination, messageID string) error
	DeleteMessage(ctx context.Context, destination, messageID string) error
	RegisterCommandMenu(ctx context.Context, commands []CommandInfo) error
}
