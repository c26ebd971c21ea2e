package generate

import (
	"fmt"

	"github.com/deploymenttheory/go-uefi-guid/internal/guid"
	"github.com/deploymenttheory/go-uefi-guid/pkg/app"
)

// Validate validates a rendering request
func (r *Request) Validate() error {
	if r.Supplied() && !guid.IsCanonicalFormat(*r.GUID) {
		return app.NewError(app.ErrCodeInvalidFormat, fmt.Sprintf("invalid guid format: %s", *r.GUID), nil)
	}
	return nil
}
