package orderControllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/madoxlx/egtravel-api/models"
	"github.com/redis/go-redis/v9"
)

const (
	// idem:order:create:{fingerprint} -> 1
	keyIdemOrderCreate = "idem:order:create:%s"
	ttlIdempotency     = 24 * time.Hour

	// Two submissions of the same cart within the same bucket count as one.
	idemTimeBucket = time.Minute
)

// checkoutFingerprint hashes the identity, the cart's line items, and a
// coarse time bucket around at. A retried double-submission lands on the
// same key; a genuinely new cart (different items or quantities) does not.
func checkoutFingerprint(identity models.Identity, items []models.CartItem, at time.Time) string {
	h := sha256.New()
	if identity.IsAuthenticated() {
		h.Write([]byte("u:" + strconv.FormatUint(uint64(identity.UserID), 10)))
	} else {
		h.Write([]byte("s:" + identity.SessionID))
	}
	for _, item := range items {
		fmt.Fprintf(h, "|%d:%s:%d:%d", item.ID, item.ItemType, item.ItemID, item.Quantity)
	}
	fmt.Fprintf(h, "|t:%d", at.Unix()/int64(idemTimeBucket.Seconds()))
	return hex.EncodeToString(h.Sum(nil))
}

// claimCheckout marks the fingerprint as in flight. The second caller with
// the same fingerprint gets ok=false. A var so tests can substitute the
// Redis round trip.
var claimCheckout = func(rdb *redis.Client, identity models.Identity, items []models.CartItem) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf(keyIdemOrderCreate, checkoutFingerprint(identity, items, time.Now()))
	return rdb.SetNX(ctx, key, 1, ttlIdempotency).Result()
}
