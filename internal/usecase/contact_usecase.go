package usecase

import "context"

// ContactInput is a message from the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Company string
	Message string
}

// ContactUsecase stores visitor messages.
type ContactUsecase interface {
	Submit(ctx context.Context, input ContactInput) error
}
