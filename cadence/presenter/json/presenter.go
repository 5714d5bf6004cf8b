package json

import (
	"encoding/json"
	"io"

	"github.com/evolens/cadence/cadence/result"
)

// Presenter writes the full analysis result as a single JSON document.
type Presenter struct {
	result result.Result
}

// NewPresenter creates a new JSON presenter
func NewPresenter(res result.Result) *Presenter {
	return &Presenter{
		result: res,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(pres.result)
}
