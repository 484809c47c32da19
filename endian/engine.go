// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from Go's standard
// encoding/binary package into a single EndianEngine interface, enabling both
// in-place and append-style encoding through one value.
//
// The PNG wire format is strictly big-endian: the chunk length prefix and the
// CRC-32 trailer are both 4-byte big-endian integers. The chunk and png codecs
// therefore always use GetBigEndianEngine; the interface exists so the codecs
// stay decoupled from a concrete byte order.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// The interface is satisfied by binary.BigEndian and binary.LittleEndian,
// making it fully compatible with existing Go code. Using the append methods
// avoids the temporary buffer an explicit PutUint32-then-append would need.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by the PNG wire format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
