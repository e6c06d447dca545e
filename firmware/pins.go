//go:build tinygo

package main

import "machine"

const (
	// Loop timing
	HEARTBEAT_INTERVAL_MS = 1000 // Weak tier heartbeat period
	MODERATE_EVERY        = 10   // Moderate tier reports every Nth heartbeat
	DEBUG_EVERY           = 60   // Debug tier reports every Nth heartbeat

	// Status LED, toggled on every heartbeat
	PIN_LED = machine.LED

	// Serial configuration
	// Output format: "tier,uptime_ms,counter\n", at most ~40 bytes per line.
	// Even with all tiers on this stays far below the 11,520 bytes/sec
	// buildcfg.SerialSpeed provides.
	SERIAL_BUFFER = 64
)
