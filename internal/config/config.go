package config

import (
	"flag"
	"os"
	"strconv"
)

// Config holds the feed handler's runtime configuration: which multicast
// group to join for the ITCH feed, and how the WebSocket fan-out listens.
type Config struct {
	// Multicast feed source
	McastGroup     string
	McastPort      int
	McastInterface string

	// WebSocket fan-out server
	WSPort int
	Host   string

	SendBufferSize int
}

func Load() *Config {
	c := &Config{}

	flag.StringVar(&c.McastGroup, "mcast-group", envStr("FEED_MCAST_GROUP", "233.54.12.1"), "Multicast group address the ITCH feed is published on")
	flag.IntVar(&c.McastPort, "mcast-port", envInt("FEED_MCAST_PORT", 26400), "Multicast port the ITCH feed is published on")
	flag.StringVar(&c.McastInterface, "mcast-iface", envStr("FEED_MCAST_IFACE", ""), "Network interface to join the multicast group on (empty = default)")

	flag.IntVar(&c.WSPort, "port", envInt("FEED_PORT", 8100), "WebSocket server port")
	flag.StringVar(&c.Host, "host", envStr("FEED_HOST", "0.0.0.0"), "Listen host")
	flag.IntVar(&c.SendBufferSize, "send-buffer", envInt("SEND_BUFFER", 4096), "Per-client send buffer size")

	flag.Parse()

	return c
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
