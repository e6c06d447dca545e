//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"machine"
	"strconv"
	"time"

	"github.com/itohio/dbgconf/pkg/buildcfg"
)

var (
	uart = machine.UART0

	// Resolved once at startup, never reassigned.
	tiers buildcfg.Settings

	// Heartbeat state
	counter  uint32
	ledState bool
	start    time.Time

	// Output line buffer
	lineBuffer [SERIAL_BUFFER]byte
)

func main() {
	PIN_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// Configure UART for debug output
	uart.Configure(machine.UARTConfig{
		BaudRate: buildcfg.SerialSpeed,
	})

	tiers = buildcfg.Current()
	start = time.Now()

	writeBanner()

	for {
		time.Sleep(HEARTBEAT_INTERVAL_MS * time.Millisecond)
		counter++

		ledState = !ledState
		PIN_LED.Set(ledState)

		if tiers.WeakDebug {
			writeLine(buildcfg.WeakDebug, counter)
		}
		if tiers.ModerateDebug && counter%MODERATE_EVERY == 0 {
			writeLine(buildcfg.ModerateDebug, counter)
		}
		if tiers.Debug && counter%DEBUG_EVERY == 0 {
			writeLine(buildcfg.Debug, counter)
		}
	}
}

// writeBanner reports the resolved tiers once, as "serial_speed,debug,moderate,weak".
func writeBanner() {
	line := lineBuffer[:0]
	line = strconv.AppendUint(line, uint64(buildcfg.SerialSpeed), 10)
	for _, f := range buildcfg.Flags() {
		line = append(line, ',')
		line = strconv.AppendInt(line, int64(tiers.Int(f)), 10)
	}
	line = append(line, '\n')
	uart.Write(line)
}

// writeLine emits "tier,uptime_ms,counter".
func writeLine(f buildcfg.Flag, n uint32) {
	line := lineBuffer[:0]
	line = append(line, f.String()...)
	line = append(line, ',')
	line = strconv.AppendInt(line, time.Since(start).Milliseconds(), 10)
	line = append(line, ',')
	line = strconv.AppendUint(line, uint64(n), 10)
	line = append(line, '\n')
	uart.Write(line)
}
