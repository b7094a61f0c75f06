package common

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"strings"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(rand.Int63n(1023))
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a snowflake based int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// Md5Hash returns the lowercase hex MD5 digest of the given string.
func Md5Hash(src string) string {
	h := md5.New()
	h.Write([]byte(src))
	return hex.EncodeToString(h.Sum(nil))
}

// Initials derives up-to-two uppercase initials from the given name parts,
// skipping empty parts. Used for avatar placeholders.
func Initials(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r := []rune(p)
		sb.WriteString(strings.ToUpper(string(r[0])))
		if sb.Len() >= 2 {
			break
		}
	}
	return sb.String()
}
