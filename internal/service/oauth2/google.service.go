package oauth2svc

import (
	"context"

	"google.golang.org/api/idtoken"
)

type GoogleUser struct {
	Email string
	Name  string
	Sub   string // Google unique user ID
}

// VerifyGoogleToken validates the ID token's signature and audience
// against Google's public keys and extracts the verified claims.
func VerifyGoogleToken(ctx context.Context, token string, clientID string) (*GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, err
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	sub, _ := payload.Claims["sub"].(string)

	return &GoogleUser{
		Email: email,
		Name:  name,
		Sub:   sub,
	}, nil
}
