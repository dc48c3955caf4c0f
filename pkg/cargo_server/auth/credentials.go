package auth

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	specialChars = "!@#$%&*/"
)

// GenerateUsername builds a login from a person's name: first initial plus
// last name plus one digit, lower-cased.
func GenerateUsername(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return ""
	}
	initial, _ := utf8.DecodeRuneInString(first)
	digit := digits[rand.IntN(len(digits))]
	return strings.ToLower(string(initial) + last + string(digit))
}

// GeneratePassword returns a temporary password of the given length with at
// least one letter, one digit and one special character.
func GeneratePassword(length int) RawPassword {
	if length < 3 {
		length = 3
	}
	allChars := letters + digits + specialChars

	password := make([]byte, 0, length)
	password = append(password,
		letters[rand.IntN(len(letters))],
		digits[rand.IntN(len(digits))],
		specialChars[rand.IntN(len(specialChars))],
	)
	for len(password) < length {
		password = append(password, allChars[rand.IntN(len(allChars))])
	}

	rand.Shuffle(len(password), func(i, j int) {
		password[i], password[j] = password[j], password[i]
	})

	return RawPassword(password)
}
