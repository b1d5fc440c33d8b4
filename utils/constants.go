package utils

import "time"

// AdminSessionPrefix is the prefix used for Redis admin session keys.
const AdminSessionPrefix = "adminSession:"

// AvailabilityCachePrefix prefixes cached availability lookups per date.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL bounds how stale a cached availability answer can get.
const AvailabilityCacheTTL = 30 * time.Second

// AdminSubject is the JWT subject of admin tokens.
const AdminSubject = "admin"
