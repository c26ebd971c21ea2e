package generate

import (
	"encoding/hex"
	"fmt"

	"github.com/deploymenttheory/go-uefi-guid/internal/guid"
	"github.com/deploymenttheory/go-uefi-guid/pkg/app"
)

// Handle resolves the GUID named by the request and renders it
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, app.NewError(app.ErrCodeInvalidArgument, "request is required", nil)
	}

	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx.Log(fmt.Sprintf("Rendering guid (lowercase: %t, standard only: %t)", req.Lowercase, req.StandardOnly))

	// 2. Resolve the identifier
	id, err := resolve(req)
	if err != nil {
		return nil, err
	}

	source := "supplied"
	if !req.Supplied() {
		source = "generated"
	}
	ctx.WithField("source", source).Debugf("Resolved guid %s", id)

	// 3. Render
	return render(id, req), nil
}

// resolve parses the supplied text or generates a fresh GUID
func resolve(req *Request) (guid.GUID, error) {
	if req.Supplied() {
		id, err := guid.Parse(*req.GUID)
		if err != nil {
			return guid.Nil, app.NewError(app.ErrCodeInvalidFormat, "invalid guid", err)
		}
		return id, nil
	}

	id, err := guid.New()
	if err != nil {
		return guid.Nil, app.NewError(app.ErrCodeGenerationFailed, "could not generate guid", err)
	}
	return id, nil
}

// render computes the canonical form and, unless standard-only output was
// requested, the struct, define and in-memory forms
func render(id guid.GUID, req *Request) *Response {
	response := &Response{
		GUID:         id.Canonical(req.Lowercase),
		Generated:    !req.Supplied(),
		StandardOnly: req.StandardOnly,
	}
	if req.StandardOnly {
		return response
	}

	mem := id.MixedEndian()
	response.Struct = id.StructLiteral(req.Lowercase)
	response.Define = id.Define(req.Lowercase)
	response.EFIBytes = guid.FoldCase(hex.EncodeToString(mem[:]), req.Lowercase)
	return response
}
