// Package printer provides value printers for argument and result
// rendering, plus a registry that resolves printers by name or alias.
//
// A printer turns one value into the string spliced into a log message.
// Printers are free to fail: the engine falls back to its built-in
// rendering whenever a printer returns an error or panics, so a printer
// never has to defend against unsupported values.
package printer

import (
	"encoding/json"
	"encoding/xml"

	"github.com/hyp3rd/ewrap"

	"github.com/DonKeyHot1/eclair"
)

// JSONPrinter renders values as single-line JSON.
type JSONPrinter struct{}

// Ensure JSONPrinter implements eclair.Printer.
var _ eclair.Printer = (*JSONPrinter)(nil)

// NewJSONPrinter creates a JSON printer.
func NewJSONPrinter() *JSONPrinter {
	return &JSONPrinter{}
}

// Print marshals value to compact JSON.
func (p *JSONPrinter) Print(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", ewrap.Wrap(err, "failed to marshal value to json")
	}

	return string(data), nil
}

// XMLPrinter renders values as single-line XML.
type XMLPrinter struct{}

// Ensure XMLPrinter implements eclair.Printer.
var _ eclair.Printer = (*XMLPrinter)(nil)

// NewXMLPrinter creates an XML printer.
func NewXMLPrinter() *XMLPrinter {
	return &XMLPrinter{}
}

// Print marshals value to XML.
func (p *XMLPrinter) Print(value any) (string, error) {
	data, err := xml.Marshal(value)
	if err != nil {
		return "", ewrap.Wrap(err, "failed to marshal value to xml")
	}

	return string(data), nil
}
