package generate

// Request represents a GUID rendering request
type Request struct {
	// GUID is the canonical text to render; nil means generate a new one
	GUID *string

	// Render options
	Lowercase    bool
	StandardOnly bool
}

// Supplied returns true if the caller provided the GUID text
func (r *Request) Supplied() bool {
	return r.GUID != nil
}

// Response holds the rendered forms of a single GUID
type Response struct {
	GUID      string `json:"guid" yaml:"guid"`
	Struct    string `json:"struct,omitempty" yaml:"struct,omitempty"`
	Define    string `json:"define,omitempty" yaml:"define,omitempty"`
	EFIBytes  string `json:"efi_bytes,omitempty" yaml:"efi_bytes,omitempty"`
	Generated bool   `json:"generated" yaml:"generated"`

	StandardOnly bool `json:"-" yaml:"-"`
}
