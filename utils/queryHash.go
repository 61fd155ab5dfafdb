package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// SearchCachePrefix namespaces every cached search response in Redis so
// invalidation can scan for them without touching other keys.
const SearchCachePrefix = "search:"

// SearchCacheKey derives a stable cache key for a search response. Terms are
// uppercased first so "stb" and "STB" share an entry, matching the search
// layer's own normalization.
func SearchCacheKey(language, terms string, preview int) string {
	query := fmt.Sprintf("lang=%s&terms=%s&preview=%d", language, strings.ToUpper(terms), preview)

	hash := sha256.New()
	hash.Write([]byte(query))

	return SearchCachePrefix + hex.EncodeToString(hash.Sum(nil))
}
