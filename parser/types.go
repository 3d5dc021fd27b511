// Package parser decodes e-Tax xtx documents and HOT010 ledger exports into
// loosely typed field maps, and classifies the filing they describe.
package parser

import "github.com/robinvdvleuten/zeicheck/model"

// DecodedDocument is an xtx document reduced to its form blocks.
type DecodedDocument struct {
	Forms []DecodedForm
	Raw   string
}

// DecodedForm is one <FormData> block. Fields maps field code to the
// trimmed text of the field.
type DecodedForm struct {
	FormType string
	Fields   map[string]string
}

// Form returns the first form with the given tag.
func (d *DecodedDocument) Form(tag model.FormType) (DecodedForm, bool) {
	for _, f := range d.Forms {
		if f.FormType == string(tag) {
			return f, true
		}
	}
	return DecodedForm{}, false
}

// Fields returns the field map of the first form with the given tag, or an
// empty map when the form is absent.
func (d *DecodedDocument) Fields(tag model.FormType) map[string]string {
	if f, ok := d.Form(tag); ok {
		return f.Fields
	}
	return map[string]string{}
}

// Has reports whether the document carries a form with the given tag.
func (d *DecodedDocument) Has(tag model.FormType) bool {
	_, ok := d.Form(tag)
	return ok
}

// LedgerRow is one account line of a HOT010 export.
type LedgerRow struct {
	Line    int
	Code    string // 9 digits: 業種番号(2) + 区分(3) + 整数(4)
	Name    string
	Opening model.Yen
	Closing model.Yen
}
