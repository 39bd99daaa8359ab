package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var (
	refMu      sync.Mutex
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// GenerateProviderRef produces an opaque reference for payment-provider
// sessions. Unique enough for reconciliation, not a security token.
func GenerateProviderRef(userID uint) string {
	refMu.Lock()
	defer refMu.Unlock()

	nanoPart := time.Now().UnixNano() % 1000000
	randPart := seededRand.Intn(900) + 100
	return fmt.Sprintf("CHR-%06d%03d%d", nanoPart, randPart, userID)
}
