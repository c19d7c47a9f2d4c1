package recharge

import (
	"errors"
	"strings"
)

// Validation errors shown verbatim in the recharge overlay.
var (
	ErrUsernameEmpty  = errors.New("recharge: username is required")
	ErrUsernameSpaces = errors.New("recharge: username must not have leading or trailing spaces")
	ErrUsernameLength = errors.New("recharge: username must be 3-20 characters")
	ErrUsernameStart  = errors.New("recharge: username must start with a letter")
	ErrUsernameChars  = errors.New("recharge: username may only contain letters, digits and underscores")

	ErrOrderIDEmpty  = errors.New("recharge: order id is required")
	ErrOrderIDSpaces = errors.New("recharge: order id must not have leading or trailing spaces")
	ErrOrderIDLength = errors.New("recharge: order id too long (64 characters max)")
	ErrOrderIDChars  = errors.New("recharge: order id may only contain letters, digits, - and _")
)

// ValidateUsername checks the player name attached to an order.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameEmpty
	}
	if username != strings.TrimSpace(username) {
		return ErrUsernameSpaces
	}
	runes := []rune(username)
	if len(runes) < 3 || len(runes) > 20 {
		return ErrUsernameLength
	}
	if !isLetter(runes[0]) {
		return ErrUsernameStart
	}
	for _, r := range runes[1:] {
		if !isLetter(r) && !isDigit(r) && r != '_' {
			return ErrUsernameChars
		}
	}
	return nil
}

// ValidateOrderID checks an order id before submission.
func ValidateOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDEmpty
	}
	if orderID != strings.TrimSpace(orderID) {
		return ErrOrderIDSpaces
	}
	runes := []rune(orderID)
	if len(runes) > 64 {
		return ErrOrderIDLength
	}
	for _, r := range runes {
		if !isLetter(r) && !isDigit(r) && r != '-' && r != '_' {
			return ErrOrderIDChars
		}
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
