package services

import "context"

// TextGenerator is the external generation provider. Single attempt, no
// retries; the credit-gated flow compensates around failures.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateStream relays chunks to onChunk as they arrive and returns the
	// accumulated full text when the provider stream ends. An error returned
	// by onChunk aborts the stream and is passed back unchanged.
	GenerateStream(ctx context.Context, prompt string, onChunk func(string) error) (string, error)
}

// WelcomeMailer sends the registration email. Best-effort only.
type WelcomeMailer interface {
	SendWelcome(toEmail, toName string) error
}
