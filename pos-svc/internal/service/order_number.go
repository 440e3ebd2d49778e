package service

import (
	"strings"

	"github.com/google/uuid"
)

const orderNumberPrefix = "ORD-"

// UUIDNumberGenerator produces numbers like ORD-3FA9C1 from a random UUID.
// Collisions are possible; the database unique index catches them.
type UUIDNumberGenerator struct{}

func (UUIDNumberGenerator) Next() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderNumberPrefix + strings.ToUpper(hex[:6])
}
