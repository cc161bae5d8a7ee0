package builder

import "fmt"

// Bytes is a byte count that renders in the largest unit dividing it
// evenly, so configured sizes round-trip through logs and parameter values
// without losing the notation they were written in.
type Bytes uint64

const (
	kilobyte Bytes = 1024
	megabyte       = 1024 * kilobyte
	gigabyte       = 1024 * megabyte
	terabyte       = 1024 * gigabyte
)

// Kilobytes returns n kilobytes.
func Kilobytes(n uint64) Bytes { return Bytes(n) * kilobyte }

// Megabytes returns n megabytes.
func Megabytes(n uint64) Bytes { return Bytes(n) * megabyte }

// Gigabytes returns n gigabytes.
func Gigabytes(n uint64) Bytes { return Bytes(n) * gigabyte }

func (b Bytes) String() string {
	switch {
	case b == 0:
		return "0B"
	case b%terabyte == 0:
		return fmt.Sprintf("%dTB", b/terabyte)
	case b%gigabyte == 0:
		return fmt.Sprintf("%dGB", b/gigabyte)
	case b%megabyte == 0:
		return fmt.Sprintf("%dMB", b/megabyte)
	case b%kilobyte == 0:
		return fmt.Sprintf("%dKB", b/kilobyte)
	default:
		return fmt.Sprintf("%dB", b)
	}
}
