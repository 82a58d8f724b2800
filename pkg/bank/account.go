package bank

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Account is a single bank account. ID is globally unique within a Store.
type Account struct {
	FirstName string
	LastName  string
	ID        string
	Balance   Amount
}

// IDGenerator produces an account identifier from the holder's name.
type IDGenerator func(firstName, lastName string) string

// NewRandomIDGenerator returns a generator that builds identifiers from the
// uppercased first letters of the first and last names followed by a
// pseudo-unique 6-digit suffix drawn from rng: "John Doe" -> "JD482913".
func NewRandomIDGenerator(rng *rand.Rand) IDGenerator {
	return func(firstName, lastName string) string {
		return fmt.Sprintf("%s%s%06d",
			initialOf(firstName), initialOf(lastName),
			100000+rng.Intn(900000))
	}
}

// DefaultIDGenerator is a time-seeded random identifier generator.
func DefaultIDGenerator() IDGenerator {
	return NewRandomIDGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func initialOf(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1])
}
