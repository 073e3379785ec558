package mvaulttest

import (
	"crypto/rand"

	"github.com/mvault/mvault"
)

// NewCondition returns a random condition for tests. Each call returns a
// different value.
func NewCondition() mvault.Condition {
	data := make([]byte, 20)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return mvault.NewCondition("test", "rnd", data)
}
