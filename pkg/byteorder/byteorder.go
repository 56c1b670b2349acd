// Package byteorder converts 16-bit, 32-bit and float values between host
// byte order and the fixed little- or big-endian order of on-disk and
// network data.
//
// The host order is fixed when the package is initialized. Each Big* and
// Little* function is then either the identity or a byte swap.
package byteorder

import (
	"math"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// bigEndian is read-only after package initialization.
var bigEndian = cpu.IsBigEndian

// HostBigEndian reports whether the host stores multi-byte values
// most significant byte first.
func HostBigEndian() bool {
	return bigEndian
}

// ShortSwap reverses the bytes of a 16-bit value.
func ShortSwap(l int16) int16 {
	return int16(bits.ReverseBytes16(uint16(l)))
}

// LongSwap reverses the bytes of a 32-bit value.
func LongSwap(l int32) int32 {
	return int32(bits.ReverseBytes32(uint32(l)))
}

// FloatSwap reverses the bytes of a float's IEEE 754 representation.
func FloatSwap(f float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(f)))
}

// BigShort converts between big-endian and host order.
func BigShort(l int16) int16 {
	if bigEndian {
		return l
	}
	return ShortSwap(l)
}

// LittleShort converts between little-endian and host order.
func LittleShort(l int16) int16 {
	if bigEndian {
		return ShortSwap(l)
	}
	return l
}

// BigLong converts between big-endian and host order.
func BigLong(l int32) int32 {
	if bigEndian {
		return l
	}
	return LongSwap(l)
}

// LittleLong converts between little-endian and host order.
func LittleLong(l int32) int32 {
	if bigEndian {
		return LongSwap(l)
	}
	return l
}

// BigFloat converts between big-endian and host order.
func BigFloat(f float32) float32 {
	if bigEndian {
		return f
	}
	return FloatSwap(f)
}

// LittleFloat converts between little-endian and host order.
func LittleFloat(f float32) float32 {
	if bigEndian {
		return FloatSwap(f)
	}
	return f
}
