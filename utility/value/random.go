package value

import (
	"math/rand"
	"strings"
	"time"
)

const (
	RandomNumber            = "0123456789"
	RandomUppercaseAlpha    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	RandomMixedCaseAlphaNum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func Random(characters string, number int) *string {
	var generated strings.Builder
	for range number {
		random := Rand.Intn(len(characters))
		generated.WriteByte(characters[random])
	}

	str := generated.String()
	return &str
}

// RandomIdentifier returns an exported Go identifier of the given length.
func RandomIdentifier(number int) *string {
	if number < 1 {
		number = 1
	}

	identifier := *Random(RandomUppercaseAlpha, 1) + *Random(RandomMixedCaseAlphaNum, number-1)
	return &identifier
}
