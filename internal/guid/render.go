package guid

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Names used by the generated declarations.
const (
	DefineName   = "NAME_GUID"
	VariableName = "gNameGuid"
	HeaderName   = "## Include/Pkg.h"
)

const (
	canonicalFormat = "%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x"
	membersFormat   = "0x%02x%02x%02x%02x, 0x%02x%02x, 0x%02x%02x, { 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x }"
	defineFormat    = "#define %s \\\n  { %s }\n\nextern %s %s;"
)

var hexLiteral = regexp.MustCompile(`0[xX]([0-9a-fA-F]+)`)

func (g GUID) unparse(format string, lower bool) string {
	s := fmt.Sprintf(format,
		g[0], g[1], g[2], g[3],
		g[4], g[5],
		g[6], g[7],
		g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15])
	return FoldCase(s, lower)
}

// Canonical renders the 36-character 8-4-4-4-12 form.
func (g GUID) Canonical(lower bool) string {
	return g.unparse(canonicalFormat, lower)
}

// Members renders the initializer body shared by the struct and define
// forms: Data1, Data2, Data3 and the braced Data4 bytes.
func (g GUID) Members(lower bool) string {
	return g.unparse(membersFormat, lower)
}

// StructLiteral renders the brace-enclosed C initializer, e.g.
// { 0x01234567, 0x89AB, 0xCDEF, { 0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF } }.
func (g GUID) StructLiteral(lower bool) string {
	return "{ " + g.Members(lower) + " }"
}

// Define renders the #define macro followed by the matching extern
// declaration.
func (g GUID) Define(lower bool) string {
	return fmt.Sprintf(defineFormat, DefineName, g.Members(lower), DefineName, VariableName)
}

// ParseStructLiteral reads the hex literals of a struct literal or define
// block back into a GUID. Exactly eleven literals are expected: Data1, Data2,
// Data3 and the eight Data4 bytes.
func ParseStructLiteral(text string) (GUID, error) {
	matches := hexLiteral.FindAllStringSubmatch(text, -1)
	if len(matches) != 11 {
		return Nil, errors.Errorf("expected 11 hex literals, found %d", len(matches))
	}

	fields := make([]uint64, len(matches))
	for i, m := range matches {
		bits := 8
		switch i {
		case 0:
			bits = 32
		case 1, 2:
			bits = 16
		}
		v, err := strconv.ParseUint(m[1], 16, bits)
		if err != nil {
			return Nil, errors.Wrapf(err, "literal %d (%s) out of range", i, m[0])
		}
		fields[i] = v
	}

	var data4 [8]byte
	for i := range data4 {
		data4[i] = byte(fields[3+i])
	}
	return FromFields(uint32(fields[0]), uint16(fields[1]), uint16(fields[2]), data4), nil
}
