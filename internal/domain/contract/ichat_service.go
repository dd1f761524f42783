package contract

import "context"

// IChatService proxies a visitor message to the external chat-completion API
// and returns the assistant reply.
type IChatService interface {
	Complete(ctx context.Context, message string) (string, error)
}
