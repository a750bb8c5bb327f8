package order

import "strings"

// CustomerInfo is the shipping form as filled by the shopper. It is copied by
// value into the Order, so later edits to the form never reach a placed order.
type CustomerInfo struct {
	FullName  string
	Phone     string
	Address   string
	Region    string
	SubRegion string
}

// Trimmed returns a copy with surrounding spaces removed from every field.
func (c CustomerInfo) Trimmed() CustomerInfo {
	return CustomerInfo{
		FullName:  strings.TrimSpace(c.FullName),
		Phone:     strings.TrimSpace(c.Phone),
		Address:   strings.TrimSpace(c.Address),
		Region:    strings.TrimSpace(c.Region),
		SubRegion: strings.TrimSpace(c.SubRegion),
	}
}
