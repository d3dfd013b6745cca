package common

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

// UUIDint64 returns a cluster-unique int64 identifier.
func UUIDint64() int64 {
	snowflakeOnce.Do(func() {
		rand.Seed(time.Now().UnixNano())
		node, err := snowflake.NewNode(rand.Int63n(1024))
		if err != nil {
			node, _ = snowflake.NewNode(1)
		}
		snowflakeNode = node
	})
	return snowflakeNode.Generate().Int64()
}

// Sha256HashWithSalt hashes src with the given salt appended.
func Sha256HashWithSalt(src, salt string) string {
	h := sha256.New()
	h.Write([]byte(src))
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

// GetSecretSalt reads the secret salt from the environment with a fixed fallback.
func GetSecretSalt() string {
	if salt := os.Getenv("GBSTORE_SECRET_SALT"); salt != "" {
		return salt
	}
	return "gbstore-secret-salt"
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
