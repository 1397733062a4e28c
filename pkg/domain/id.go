package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Collection id prefixes. Identifiers have the form
// {prefix}_{unix-millis}_{random-hex} and are unique within a process, not
// globally.
var idPrefixes = map[EntityType]string{
	EntityTeam:                "team",
	EntityMember:              "mem",
	EntityCustomer:            "cust",
	EntityCategory:            "cat",
	EntityTransaction:         "txn",
	EntitySalary:              "sal",
	EntityBonus:               "bon",
	EntityCommission:          "com",
	EntityCustomerTransaction: "ctx",
	EntityCustomerCount:       "ccnt",
	EntityUser:                "user",
	EntityAuditLog:            "audit",
}

// IDPrefix returns the id prefix for an entity type, or "rec" for unknown
// types.
func IDPrefix(entity EntityType) string {
	if p, ok := idPrefixes[entity]; ok {
		return p
	}
	return "rec"
}

// NewID generates an identifier for the given entity type at the given
// instant. The random suffix comes from crypto/rand.
func NewID(entity EntityType, now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("id entropy unavailable: %v", err))
	}
	return fmt.Sprintf("%s_%d_%s", IDPrefix(entity), now.UnixMilli(), hex.EncodeToString(buf))
}
