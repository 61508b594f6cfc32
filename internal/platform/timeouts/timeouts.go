// Package timeouts defines shared timeout constants used across Golear
// commands so HTTP servers and outbound clients agree on their limits.
package timeouts

import "time"

// APIRequest caps a single call to the Golear REST backend. The backend is
// hosted on a free tier that sleeps, so cold requests are slow.
const APIRequest = 15 * time.Second

// NewsRequest caps a single call to the news provider.
const NewsRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
