package parser

import (
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zeicheck/model"
)

// DetectArchetype classifies a document. A corporate principal tax form
// wins over a blue-return decision statement; anything else is an
// individual filing.
func DetectArchetype(doc *DecodedDocument) model.ReturnType {
	switch {
	case doc.Has(model.FormHOA110), doc.Has(model.FormHOA):
		return model.Corporate
	case doc.Has(model.FormVCA):
		return model.SoleProprietor
	default:
		return model.Individual
	}
}

// DetectFormTags lists the known form tags of a document in document
// order, without duplicates.
func DetectFormTags(doc *DecodedDocument) []model.FormType {
	tags := []model.FormType{}
	for _, f := range doc.Forms {
		tag := model.FormType(f.FormType)
		if !slices.Contains(model.KnownFormTypes, tag) || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
