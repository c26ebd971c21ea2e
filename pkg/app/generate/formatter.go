package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-uefi-guid/internal/guid"
	"github.com/deploymenttheory/go-uefi-guid/pkg/app"
)

// textTemplate lays out the canonical text, the DEC entry and the header
// declaration
const textTemplate = "\n" +
	"[[ DSC, DEC, INF ]]\n\n" +
	"%s\n\n" +
	"[[ DEC ]]\n\n" +
	"%s\n" +
	"%s = %s\n\n" +
	"[[ HEADER ]]\n\n" +
	"%s\n\n"

// FormatOutput writes the response to w in the requested format. Nothing is
// written unless the whole output could be rendered.
func FormatOutput(w io.Writer, response *Response, format string) error {
	if response == nil {
		return app.NewError(app.ErrCodeInvalidArgument, "response is required", nil)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case app.OutputText, "":
		formatText(&buf, response)
	case app.OutputJSON:
		err = formatJSON(&buf, response)
	case app.OutputYAML:
		err = formatYAML(&buf, response)
	default:
		return app.NewError(app.ErrCodeUnsupportedOutput, fmt.Sprintf("unsupported output format: %s", format), nil)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// formatText prints either the canonical line or the full template
func formatText(buf *bytes.Buffer, response *Response) {
	if response.StandardOnly {
		fmt.Fprintf(buf, "%s\n", response.GUID)
		return
	}

	fmt.Fprintf(buf, textTemplate,
		response.GUID,
		guid.HeaderName,
		guid.VariableName, response.Struct,
		response.Define)
}

// formatJSON formats the response as JSON
func formatJSON(buf *bytes.Buffer, response *Response) error {
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats the response as YAML
func formatYAML(buf *bytes.Buffer, response *Response) error {
	encoder := yaml.NewEncoder(buf)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
