package uart

import (
	"io"
	"log"
	"strings"
	"sync"

	"github.com/itohio/dbgconf/pkg/buildcfg"
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// ErrClosed is returned when writing to a closed link.
var ErrClosed = errors.New("link closed")

// Port is the byte stream a Link writes to.
type Port interface {
	io.WriteCloser
}

// PortInfo describes a serial port present on the system.
type PortInfo struct {
	Name        string
	Description string
}

// Link carries debug output over a serial port.
type Link struct {
	name     string
	baudRate int

	mu     sync.Mutex
	port   Port
	closed bool
}

// Ensure serial.Port satisfies Port.
var _ Port = (serial.Port)(nil)

// Open opens the named serial port. A zero baud rate selects buildcfg.SerialSpeed.
func Open(name string, baudRate int) (*Link, error) {
	baudRate = normalizeBaud(baudRate)

	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open serial port %s", name)
	}

	l := NewLink(port, baudRate)
	l.name = name
	return l, nil
}

// NewLink wraps an already open port.
func NewLink(p Port, baudRate int) *Link {
	return &Link{
		baudRate: normalizeBaud(baudRate),
		port:     p,
	}
}

func normalizeBaud(baudRate int) int {
	if baudRate == 0 {
		return int(buildcfg.SerialSpeed)
	}
	return baudRate
}

// Ports returns a list of available serial ports.
func Ports() ([]PortInfo, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list serial ports")
	}

	result := make([]PortInfo, 0, len(names))
	for _, name := range names {
		result = append(result, PortInfo{
			Name:        name,
			Description: name,
		})
	}

	return result, nil
}

// Name returns the port name, empty for wrapped ports.
func (l *Link) Name() string {
	return l.name
}

// BaudRate returns the configured line speed.
func (l *Link) BaudRate() int {
	return l.baudRate
}

// Write sends p as is.
func (l *Link) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, ErrClosed
	}

	n, err := l.port.Write(p)
	if err != nil {
		return n, errors.Wrap(err, "failed to write to serial port")
	}
	return n, nil
}

// WriteLine sends s followed by a newline. Trailing newlines in s are
// collapsed so each call produces exactly one line.
func (l *Link) WriteLine(s string) error {
	_, err := l.Write([]byte(strings.TrimRight(s, "\r\n") + "\n"))
	return err
}

// Close closes the underlying port. Closing twice is a no-op.
func (l *Link) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if err := l.port.Close(); err != nil {
		log.Printf("Error closing serial port: %v", err)
		return errors.Wrap(err, "failed to close serial port")
	}

	return nil
}
