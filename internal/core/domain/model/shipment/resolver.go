package shipment

import (
	"strings"

	"vizoshop/internal/core/domain/model/region"
)

// CapitalRegion and CapitalSubRegion are the fallback destinations used when
// a name cannot be resolved.
const (
	CapitalRegion    = "Alger"
	CapitalSubRegion = "Alger Centre"
)

// Resolver maps human-readable names to the partner's numeric ids.
//
// The partner numbers regions by official wilaya code and sub-regions as
// code*100 + position, both derived from the ordered region.Directory.
// Resolution is total: unknown names yield the capital's id with
// wasDefaulted set, and never an error.
type Resolver struct {
	regions          map[string]int
	subRegions       map[string]int
	defaultRegion    int
	defaultSubRegion int
}

func NewResolver(dir region.Directory) Resolver {
	r := Resolver{
		regions:    make(map[string]int),
		subRegions: make(map[string]int),
	}

	for idx, name := range dir.Regions() {
		code := idx + 1
		r.regions[key(name)] = code

		for pos, sub := range dir.SubRegionsOf(name) {
			subKey := key(sub)
			if _, taken := r.subRegions[subKey]; !taken {
				r.subRegions[subKey] = code*100 + pos + 1
			}
		}
	}

	r.defaultRegion = r.regions[key(CapitalRegion)]
	r.defaultSubRegion = r.subRegions[key(CapitalSubRegion)]
	return r
}

// RegionID resolves a region name.
//
// Example:
//
//	id, defaulted := resolver.RegionID("Blida")    // 9, false
//	id, defaulted = resolver.RegionID("Atlantis")  // 16, true
func (r Resolver) RegionID(name string) (int, bool) {
	if id, ok := r.regions[key(name)]; ok {
		return id, false
	}
	return r.defaultRegion, true
}

// SubRegionID resolves a sub-region name.
func (r Resolver) SubRegionID(name string) (int, bool) {
	if id, ok := r.subRegions[key(name)]; ok {
		return id, false
	}
	return r.defaultSubRegion, true
}

// Resolve fills every id of req from its names and records whether the
// destination had to be defaulted.
func (r Resolver) Resolve(req Request) Request {
	req.ToRegionID, req.RegionDefaulted = r.RegionID(req.ToRegionName)
	req.ToSubRegionID, req.SubRegionDefaulted = r.SubRegionID(req.ToSubRegionName)
	req.FromRegionID, _ = r.RegionID(req.FromRegionName)
	return req
}

func key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
