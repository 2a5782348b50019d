// Package redis bootstraps the Redis client used by the audit stream
// sink: connection with retry from env-driven config, plus a health
// check closure.
package redis
