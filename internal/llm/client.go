// ABOUTME: ChatClient abstracts the language model behind the inquirer
// ABOUTME: Production implementation is the OpenAI client; tests use fakes
package llm

import (
	"context"

	"github.com/sable/inquiry/internal/models"
)

// TokenStream is a lazy, finite, non-restartable sequence of reply
// fragments. Recv returns io.EOF when the model is done. Close releases
// the underlying connection and is safe to call more than once.
type TokenStream interface {
	Recv() (string, error)
	Close() error
}

// ChatClient produces model replies for a message log, either as a
// complete string or as a token stream.
type ChatClient interface {
	Complete(ctx context.Context, msgs []models.Message) (string, error)
	Stream(ctx context.Context, msgs []models.Message) (TokenStream, error)
}
