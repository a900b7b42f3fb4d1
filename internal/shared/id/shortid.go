package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const (
	// Base36 alphabet, lower case, matching strconv.FormatInt(n, 36)
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// SuffixLength is the number of random characters appended to time-derived ids
	SuffixLength = 5
)

// Prefixes for different record types
const (
	PrefixTicket  = "T-"
	PrefixMessage = "msg-"
)

// Generate creates a random base36 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = SuffixLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewTimeOrdered returns prefix + base36(unix millis of now) + a random suffix.
// Ids sort roughly by creation time; two ids minted in the same millisecond
// collide only if the random suffixes match.
func NewTimeOrdered(prefix string, now time.Time) (string, error) {
	suffix, err := Generate(SuffixLength)
	if err != nil {
		return "", err
	}
	return prefix + strconv.FormatInt(now.UnixMilli(), 36) + suffix, nil
}

// NewTicketID generates a ticket id such as "T-m1x2y3z4abcde".
func NewTicketID(now time.Time) (string, error) {
	return NewTimeOrdered(PrefixTicket, now)
}

// NewMessageID generates a ticket message id such as "msg-m1x2y3z4abcde".
func NewMessageID(now time.Time) (string, error) {
	return NewTimeOrdered(PrefixMessage, now)
}
