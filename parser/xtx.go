package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

type xmlField struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlFormData struct {
	ID     string     `xml:"id,attr"`
	Fields []xmlField `xml:"Field"`
}

// DecodeXML decodes an xtx document. The whole document is tokenised, so
// malformed markup anywhere yields a *SyntaxError. A well-formed document
// whose first top-level element is not <DataRoot> yields a *StructuralError.
func DecodeXML(raw string) (*DecodedDocument, error) {
	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.CharsetReader = charsetReader

	doc := &DecodedDocument{Raw: raw}

	var (
		depth    int
		seenRoot bool
		inRoot   bool
		hasRoot  bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newSyntaxError(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if !seenRoot && t.Name.Local == "DataRoot" {
					inRoot, hasRoot = true, true
				}
				seenRoot = true
			}

			if depth == 1 && inRoot && t.Name.Local == "FormData" {
				var fd xmlFormData
				if err := dec.DecodeElement(&fd, &t); err != nil {
					return nil, newSyntaxError(dec, err)
				}
				doc.Forms = append(doc.Forms, newDecodedForm(fd))
				continue
			}
			depth++

		case xml.EndElement:
			depth--
			if depth == 0 {
				inRoot = false
			}
		}
	}

	if !hasRoot {
		return nil, &StructuralError{Message: "Invalid xtx: missing DataRoot element"}
	}
	return doc, nil
}

func newDecodedForm(fd xmlFormData) DecodedForm {
	fields := make(map[string]string, len(fd.Fields))
	for _, f := range fd.Fields {
		fields[f.ID] = strings.TrimSpace(f.Value)
	}
	return DecodedForm{FormType: fd.ID, Fields: fields}
}

// charsetReader resolves declared encodings such as Shift_JIS.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
