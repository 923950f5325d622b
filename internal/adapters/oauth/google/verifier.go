package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/votebox/internal/core/ports"
	"google.golang.org/api/idtoken"
)

// Validator checks a Google ID token. idtoken.Validate satisfies it.
type Validator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type GoogleVerifier struct {
	validate Validator
}

func NewVerifier() ports.TokenVerifier {
	return &GoogleVerifier{validate: idtoken.Validate}
}

// NewVerifierWithValidator is used where tokens cannot reach Google.
func NewVerifierWithValidator(validate Validator) *GoogleVerifier {
	return &GoogleVerifier{validate: validate}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := v.validate(ctx, token, clientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email not found in claims")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email is not verified")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	return &ports.TokenPayload{Email: email, Name: name}, nil
}
