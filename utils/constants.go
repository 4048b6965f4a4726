package utils

import "time"

// AuthCachePrefix prefixes Redis keys that hold hashed auth tokens.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is how long a cached token hash stays valid without use.
const AuthCacheTTL = time.Hour

// SessionKeyPrefix prefixes Redis keys that hold booking workflow sessions.
const SessionKeyPrefix = "bsession:"
