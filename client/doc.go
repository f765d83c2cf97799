// Package client manages the connection to the Paradex trading API.
//
// The exchange client is expensive to construct (onboarding and JWT
// acquisition happen at dial time), so the package exposes a Provider
// that dials lazily on first use and hands every later caller the same
// connection. A failed dial is not cached: the next call retries.
//
// Configuration is read from the environment (PARADEX_* and SERVER_*
// variables) through koanf, with defaults suitable for production.
package client
