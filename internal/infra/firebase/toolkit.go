package firebase

import (
	"context"

	"google.golang.org/api/identitytoolkit/v3"
)

// tokenGrant is what the provider returns after a password or custom-token exchange.
type tokenGrant struct {
	UID          string
	Email        string
	DisplayName  string
	IDToken      string
	RefreshToken string
}

// passwordAuth is the subset of the Identity Toolkit REST API used for email/password flows.
type passwordAuth interface {
	VerifyPassword(ctx context.Context, email, password string) (*tokenGrant, error)
	SignUp(ctx context.Context, email, password string) (*tokenGrant, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	ExchangeCustomToken(ctx context.Context, customToken string) (*tokenGrant, error)
}

type toolkitClient struct {
	svc *identitytoolkit.Service
}

func newToolkitClient(svc *identitytoolkit.Service) passwordAuth {
	return &toolkitClient{svc: svc}
}

func (c *toolkitClient) VerifyPassword(ctx context.Context, email, password string) (*tokenGrant, error) {
	resp, err := c.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &tokenGrant{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *toolkitClient) SignUp(ctx context.Context, email, password string) (*tokenGrant, error) {
	resp, err := c.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &tokenGrant{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (c *toolkitClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	_, err := c.svc.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()

	return err
}

func (c *toolkitClient) ExchangeCustomToken(ctx context.Context, customToken string) (*tokenGrant, error) {
	resp, err := c.svc.Relyingparty.VerifyCustomToken(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyCustomTokenRequest{
		Token:             customToken,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &tokenGrant{
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}
