package constant

import "time"

const (
	// websocket limits shared by every melody hub
	MaxMessageSize int64 = 1024 * 1024
	PingPeriod           = 10 * time.Second
)
