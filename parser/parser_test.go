package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/text/encoding/japanese"

	"github.com/robinvdvleuten/zeicheck/model"
)

const sampleXtx = `<?xml version="1.0" encoding="UTF-8"?>
<DataRoot>
  <FormData id="ABA">
    <Field id="ITA_ABA0010"> 10000000 </Field>
    <Field id="ITA_ABA0290">650000</Field>
  </FormData>
  <FormData id="VCA">
    <Field id="ITA_VCA0010">10000000</Field>
    <Field id="ITA_VCA0020"/>
  </FormData>
  <FormData id="XYZ"></FormData>
</DataRoot>
`

func TestDecodeXML(t *testing.T) {
	doc, err := DecodeXML(sampleXtx)
	assert.NoError(t, err)

	assert.Equal(t, 3, len(doc.Forms))
	assert.Equal(t, "ABA", doc.Forms[0].FormType)
	assert.Equal(t, "VCA", doc.Forms[1].FormType)
	assert.Equal(t, "XYZ", doc.Forms[2].FormType)

	assert.Equal(t, "10000000", doc.Forms[0].Fields["ITA_ABA0010"])
	assert.Equal(t, "", doc.Forms[1].Fields["ITA_VCA0020"])
	assert.Equal(t, 0, len(doc.Forms[2].Fields))
	assert.Equal(t, sampleXtx, doc.Raw)
}

func TestDecodeXMLIsIdempotent(t *testing.T) {
	first, err := DecodeXML(sampleXtx)
	assert.NoError(t, err)
	second, err := DecodeXML(sampleXtx)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeXMLErrors(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		structural bool
		line       int
	}{
		{
			name:       "missing DataRoot",
			raw:        `<Root><FormData id="ABA"/></Root>`,
			structural: true,
		},
		{
			name:       "empty document",
			raw:        ``,
			structural: true,
		},
		{
			name: "mismatched tag",
			raw:  "<DataRoot>\n<FormData id=\"ABA\">\n<Field id=\"x\">1</Fld>\n</FormData>\n</DataRoot>",
			line: 3,
		},
		{
			name: "unclosed root",
			raw:  "<DataRoot>\n<FormData id=\"ABA\"></FormData>\n",
			line: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeXML(tt.raw)
			assert.Error(t, err)

			if tt.structural {
				var structErr *StructuralError
				assert.True(t, errors.As(err, &structErr))
				assert.Equal(t, "Invalid xtx: missing DataRoot element", err.Error())
				return
			}

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.line, syntaxErr.Pos.Line)
		})
	}
}

func TestDecodeXMLShiftJIS(t *testing.T) {
	body := `<?xml version="1.0" encoding="Shift_JIS"?><DataRoot><FormData id="ABB"><Field id="ITA_ABB0020">株式会社テスト</Field></FormData></DataRoot>`
	raw, err := japanese.ShiftJIS.NewEncoder().String(body)
	assert.NoError(t, err)

	doc, err := DecodeXML(raw)
	assert.NoError(t, err)
	assert.Equal(t, "株式会社テスト", doc.Fields(model.FormABB)["ITA_ABB0020"])
}

func TestWithFilename(t *testing.T) {
	_, err := DecodeXML("<DataRoot>\n<Oops></DataRoot>")
	err = WithFilename(err, "return.xtx")

	var syntaxErr *SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "return.xtx", syntaxErr.Pos.Filename)
	assert.Contains(t, err.Error(), "return.xtx:2")

	_, err = DecodeXML("<Other/>")
	err = WithFilename(err, "return.xtx")
	assert.Equal(t, "return.xtx: Invalid xtx: missing DataRoot element", err.Error())
}

func TestDecodeLedgerExport(t *testing.T) {
	csv := "011000001,現金,250000,300000,\r\n" +
		"\r\n" +
		"011000002,\"預金, 普通\",1000000,1200000,備考\n" +
		"   \n" +
		"12345,短いコード,1,2\n" +
		"014000001,売上高\n" +
		"014000001,売上高,0,abc\n" +
		"015000006,給料,0,1234.9\n"

	raw, err := japanese.ShiftJIS.NewEncoder().String(csv)
	assert.NoError(t, err)

	rows, err := DecodeLedgerExport([]byte(raw), ShiftJIS)
	assert.NoError(t, err)

	assert.Equal(t, []LedgerRow{
		{Line: 1, Code: "011000001", Name: "現金", Opening: 250_000, Closing: 300_000},
		{Line: 3, Code: "011000002", Name: "預金, 普通", Opening: 1_000_000, Closing: 1_200_000},
		{Line: 7, Code: "014000001", Name: "売上高", Opening: 0, Closing: 0},
		{Line: 8, Code: "015000006", Name: "給料", Opening: 0, Closing: 1234},
	}, rows)
}

func TestDecodeLedgerExportEmpty(t *testing.T) {
	rows, err := DecodeLedgerExport(nil, nil)
	assert.NoError(t, err)
	assert.True(t, rows != nil)
	assert.Equal(t, 0, len(rows))
}

func TestDetectArchetype(t *testing.T) {
	tests := []struct {
		name  string
		forms []string
		want  model.ReturnType
	}{
		{"HOA110 wins over VCA", []string{"ABA", "VCA", "HOA110"}, model.Corporate},
		{"provisional HOA", []string{"HOA", "HOD"}, model.Corporate},
		{"blue return", []string{"ABA", "ABB", "VCA"}, model.SoleProprietor},
		{"wage earner", []string{"ABA", "ABB"}, model.Individual},
		{"HOK alone is not corporate", []string{"HOK"}, model.Individual},
		{"empty", nil, model.Individual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectArchetype(docWith(tt.forms...)))
		})
	}
}

func TestDetectFormTags(t *testing.T) {
	doc := docWith("ABB", "XYZ", "ABA", "ABB", "HOA410")
	assert.Equal(t, []model.FormType{model.FormABB, model.FormABA, model.FormHOA410}, DetectFormTags(doc))

	assert.Equal(t, []model.FormType{}, DetectFormTags(docWith()))
}

func docWith(tags ...string) *DecodedDocument {
	doc := &DecodedDocument{}
	for _, tag := range tags {
		doc.Forms = append(doc.Forms, DecodedForm{FormType: tag, Fields: map[string]string{}})
	}
	return doc
}
