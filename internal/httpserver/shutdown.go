package httpserver

import "time"

// ShutdownTimeout bounds graceful shutdown. The blob cleaner drains within
// the same window before the listener closes.
var ShutdownTimeout = 10 * time.Second
