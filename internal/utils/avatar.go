package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// AvatarURL returns the Gravatar identicon URL for an email address.
func AvatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s%s?d=identicon&s=%d", gravatarBaseURL, hex.EncodeToString(sum[:]), size)
}
