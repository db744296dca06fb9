package service

// ContentSanitizer strips markup from user-submitted free text.
type ContentSanitizer interface {
	Sanitize(input string) string
}
