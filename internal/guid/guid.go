// Package guid holds the GUID value used by the generator and the renderers
// that turn it into the textual forms consumed by UEFI build files and C
// headers.
package guid

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Size is the number of bytes in a GUID.
const Size = 16

// GUID is a 16-byte identifier stored in canonical text order: Data1, Data2
// and Data3 are big-endian, followed by the eight Data4 bytes.
type GUID [Size]byte

// Nil is the all-zero GUID.
var Nil GUID

// mixedEndianTranspose maps each byte of the in-memory EFI_GUID layout to its
// position in canonical order.
var mixedEndianTranspose = [Size]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// Parse converts canonical text into a GUID. The text must pass
// IsCanonicalFormat; braced, URN and undashed forms are rejected.
func Parse(text string) (GUID, error) {
	if !IsCanonicalFormat(text) {
		return Nil, errors.Errorf("invalid guid format: %q", text)
	}
	u, err := uuid.Parse(text)
	if err != nil {
		return Nil, errors.Wrapf(err, "failed to parse guid %q", text)
	}
	return GUID(u), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level constants and tests.
func MustParse(text string) GUID {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// New returns a freshly generated random GUID. The bytes are used exactly as
// the random UUID source produces them.
func New() (GUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return Nil, errors.Wrap(err, "failed to generate guid")
	}
	return GUID(u), nil
}

// FromFields builds a GUID from its EFI_GUID fields.
func FromFields(data1 uint32, data2, data3 uint16, data4 [8]byte) GUID {
	var g GUID
	binary.BigEndian.PutUint32(g[0:4], data1)
	binary.BigEndian.PutUint16(g[4:6], data2)
	binary.BigEndian.PutUint16(g[6:8], data3)
	copy(g[8:], data4[:])
	return g
}

// Data1 returns the leading 32-bit field.
func (g GUID) Data1() uint32 {
	return binary.BigEndian.Uint32(g[0:4])
}

// Data2 returns the first 16-bit field.
func (g GUID) Data2() uint16 {
	return binary.BigEndian.Uint16(g[4:6])
}

// Data3 returns the second 16-bit field.
func (g GUID) Data3() uint16 {
	return binary.BigEndian.Uint16(g[6:8])
}

// Data4 returns the trailing eight bytes.
func (g GUID) Data4() [8]byte {
	var d [8]byte
	copy(d[:], g[8:])
	return d
}

// MixedEndian returns the GUID as it is laid out in memory by an EFI_GUID
// struct on a little-endian machine.
func (g GUID) MixedEndian() (o [Size]byte) {
	for dest, from := range mixedEndianTranspose {
		o[dest] = g[from]
	}
	return o
}

// FromMixedEndian converts an in-memory EFI_GUID layout back to a GUID.
func FromMixedEndian(b [Size]byte) (g GUID) {
	for from, dest := range mixedEndianTranspose {
		g[dest] = b[from]
	}
	return g
}

// String returns the lowercase canonical form.
func (g GUID) String() string {
	return uuid.UUID(g).String()
}
