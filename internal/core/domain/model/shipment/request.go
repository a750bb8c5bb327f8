package shipment

import (
	"strings"
)

// Default parcel description used when the caller supplies none.
const (
	DefaultHeight = 10
	DefaultWidth  = 20
	DefaultLength = 30
	DefaultWeight = 1.0
)

// Request is one parcel in the partner's parcel-creation schema.
type Request struct {
	OrderID     string `json:"order_id"`
	FirstName   string `json:"firstname"`
	FamilyName  string `json:"familyname"`
	Phone       string `json:"contact_phone"`
	Address     string `json:"address"`
	ProductList string `json:"product_list"`

	ToSubRegionID   int    `json:"to_commune_id"`
	ToSubRegionName string `json:"to_commune_name"`
	ToRegionID      int    `json:"to_region_id"`
	ToRegionName    string `json:"to_region_name"`
	FromRegionID    int    `json:"from_region_id"`
	FromRegionName  string `json:"from_region_name"`

	Price         int     `json:"price"`
	DoInsurance   bool    `json:"do_insurance"`
	DeclaredValue int     `json:"declared_value"`
	Height        int     `json:"height"`
	Width         int     `json:"width"`
	Length        int     `json:"length"`
	Weight        float64 `json:"weight"`
	FreeShipping  bool    `json:"freeshipping"`
	IsStopdesk    bool    `json:"is_stopdesk"`
	HasExchange   bool    `json:"has_exchange"`

	// Set by resolution when a name was unknown and the capital was used.
	RegionDefaulted    bool `json:"-"`
	SubRegionDefaulted bool `json:"-"`
}

// NewDefaultRequest returns a Request carrying the default descriptive
// fields: no insurance, zero declared value, default dimensions and weight.
// Decoding a partial JSON document into it keeps the defaults for every
// field the document omits.
func NewDefaultRequest() Request {
	return Request{
		Height: DefaultHeight,
		Width:  DefaultWidth,
		Length: DefaultLength,
		Weight: DefaultWeight,
	}
}

// Normalize returns a copy with trimmed text, a national-format phone, a
// single-line product list and positive dimensions.
func (r Request) Normalize() Request {
	r.OrderID = strings.TrimSpace(r.OrderID)
	r.FirstName = collapse(r.FirstName)
	r.FamilyName = collapse(r.FamilyName)
	r.Phone = NationalPhone(r.Phone)
	r.Address = collapse(r.Address)
	r.ProductList = collapse(r.ProductList)
	r.ToSubRegionName = collapse(r.ToSubRegionName)
	r.ToRegionName = collapse(r.ToRegionName)
	r.FromRegionName = collapse(r.FromRegionName)

	if r.Height <= 0 {
		r.Height = DefaultHeight
	}
	if r.Width <= 0 {
		r.Width = DefaultWidth
	}
	if r.Length <= 0 {
		r.Length = DefaultLength
	}
	if r.Weight <= 0 {
		r.Weight = DefaultWeight
	}
	if r.DeclaredValue < 0 {
		r.DeclaredValue = 0
	}

	return r
}

// NationalPhone rewrites an international Algerian number to the national
// form expected by the partner: "+213 555123456" becomes "0555123456".
// Numbers without the country prefix are only stripped of separators.
func NationalPhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')', '\t':
			return -1
		}
		return r
	}, phone)

	for _, prefix := range []string{"+213", "00213"} {
		if rest, ok := strings.CutPrefix(cleaned, prefix); ok {
			if strings.HasPrefix(rest, "0") {
				return rest
			}
			return "0" + rest
		}
	}

	return cleaned
}

// SplitFullName splits a full name at its first space into first and family
// names. A single-word name is used for both.
func SplitFullName(fullName string) (string, string) {
	fields := strings.Fields(fullName)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
