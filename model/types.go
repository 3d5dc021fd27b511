package model

// ReturnType discriminates the filing archetypes.
type ReturnType string

const (
	// SoleProprietor is a blue-return business filing (個人事業主・青色申告).
	SoleProprietor ReturnType = "sole-proprietor"
	// Individual is a wage earner's filing (給与所得者等).
	Individual ReturnType = "individual"
	// Corporate is a micro-corporation filing (法人).
	Corporate ReturnType = "corporate"
)

func (r ReturnType) String() string {
	return string(r)
}

// Label returns the Japanese name of the archetype.
func (r ReturnType) Label() string {
	switch r {
	case SoleProprietor:
		return "個人事業主"
	case Individual:
		return "個人"
	case Corporate:
		return "法人"
	}
	return string(r)
}

// FormType is the type tag of a form block inside an xtx document.
type FormType string

const (
	FormABA    FormType = "ABA"    // 申告書第一表
	FormABB    FormType = "ABB"    // 申告書第二表
	FormVCA    FormType = "VCA"    // 青色申告決算書（一般用）
	FormHOA    FormType = "HOA"    // 別表一 (provisional codes)
	FormHOD    FormType = "HOD"    // 別表四 (provisional codes)
	FormHOK    FormType = "HOK"    // 法人決算書
	FormHOA110 FormType = "HOA110" // 別表一(一)
	FormHOA410 FormType = "HOA410" // 別表四
)

// KnownFormTypes lists every form tag zeicheck understands, in display order.
var KnownFormTypes = []FormType{
	FormABA, FormABB, FormVCA, FormHOA, FormHOD, FormHOK, FormHOA110, FormHOA410,
}

// Description returns the Japanese title of the form.
func (f FormType) Description() string {
	switch f {
	case FormABA:
		return "申告書第一表"
	case FormABB:
		return "申告書第二表"
	case FormVCA:
		return "青色申告決算書（一般用）"
	case FormHOA:
		return "法人税申告書 別表一（暫定）"
	case FormHOD:
		return "法人税申告書 別表四（暫定）"
	case FormHOK:
		return "法人決算書"
	case FormHOA110:
		return "法人税申告書 別表一(一)"
	case FormHOA410:
		return "法人税申告書 別表四"
	}
	return string(f)
}

// FiscalYear identifies the filing period.
type FiscalYear struct {
	Nengo     int    // era year, e.g. 5 for 令和5年
	Year      int    // Gregorian year
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// DefaultFiscalYear is used when the document carries no period information.
func DefaultFiscalYear() FiscalYear {
	return FiscalYear{
		Nengo:     5,
		Year:      2023,
		StartDate: "2023-01-01",
		EndDate:   "2023-12-31",
	}
}

// Metadata describes where a return came from.
type Metadata struct {
	FilePath     string
	FormTypes    []FormType
	FilingMethod string
}
