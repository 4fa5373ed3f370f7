package ai

import (
	"context"

	"kisan/entities"
)

// Client is the generative collaborator behind the chat and photo-scan
// screens. It returns free text (or a structured scan verdict); nothing in
// the decision core depends on it.
type Client interface {
	Chat(ctx context.Context, prompt, imageBase64 string) (string, error)
	Scan(ctx context.Context, imageBase64 string) (entities.ScanReport, error)
}
