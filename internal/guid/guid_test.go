package guid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "01234567-89ab-cdef-0123-456789abcdef"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    GUID
		wantErr bool
	}{
		{
			name:  "lowercase",
			input: sampleText,
			want:  GUID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
		},
		{
			name:  "uppercase",
			input: "01234567-89AB-CDEF-0123-456789ABCDEF",
			want:  GUID{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
		},
		{
			name:  "all zero",
			input: "00000000-0000-0000-0000-000000000000",
			want:  Nil,
		},
		{name: "braced", input: "{01234567-89ab-cdef-0123-456789abcdef}", wantErr: true},
		{name: "urn", input: "urn:uuid:01234567-89ab-cdef-0123-456789abcdef", wantErr: true},
		{name: "undashed", input: "0123456789abcdef0123456789abcdef", wantErr: true},
		{name: "not a guid", input: "not-a-guid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("g1234567-89ab-cdef-0123-456789abcdef") })
	assert.NotPanics(t, func() { MustParse(sampleText) })
}

func TestNew(t *testing.T) {
	seen := make(map[GUID]bool)
	for i := 0; i < 64; i++ {
		g, err := New()
		require.NoError(t, err)
		assert.False(t, seen[g], "duplicate guid %s", g)
		seen[g] = true

		// The random source sets the RFC 4122 version and variant itself.
		assert.Equal(t, uuid.Version(4), uuid.UUID(g).Version())
		assert.Equal(t, uuid.RFC4122, uuid.UUID(g).Variant())
	}
}

func TestFields(t *testing.T) {
	g := MustParse(sampleText)

	assert.Equal(t, uint32(0x01234567), g.Data1())
	assert.Equal(t, uint16(0x89ab), g.Data2())
	assert.Equal(t, uint16(0xcdef), g.Data3())
	assert.Equal(t, [8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, g.Data4())

	assert.Equal(t, g, FromFields(g.Data1(), g.Data2(), g.Data3(), g.Data4()))
}

func TestMixedEndian(t *testing.T) {
	g := MustParse(sampleText)

	want := [Size]byte{0x67, 0x45, 0x23, 0x01, 0xab, 0x89, 0xef, 0xcd, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	assert.Equal(t, want, g.MixedEndian())
	assert.Equal(t, g, FromMixedEndian(g.MixedEndian()))
}

func TestString(t *testing.T) {
	assert.Equal(t, sampleText, MustParse("01234567-89AB-CDEF-0123-456789ABCDEF").String())
}
