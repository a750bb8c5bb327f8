package region

import "strings"

// Directory is the ordered wilaya → commune table. Wilayas keep their
// official numbering order; communes keep the order they are listed in, the
// chef-lieu first.
type Directory struct {
	regions    []string
	subRegions map[string][]string
	index      map[string]string
}

// NewDirectory returns the bundled directory.
func NewDirectory() Directory {
	d := Directory{
		regions:    make([]string, 0, len(bundledDirectory)),
		subRegions: make(map[string][]string, len(bundledDirectory)),
		index:      make(map[string]string, len(bundledDirectory)),
	}

	for _, entry := range bundledDirectory {
		d.regions = append(d.regions, entry.name)
		d.subRegions[entry.name] = entry.communes
		d.index[normalize(entry.name)] = entry.name
	}

	return d
}

// Regions returns every region name in official order.
func (d Directory) Regions() []string {
	out := make([]string, len(d.regions))
	copy(out, d.regions)
	return out
}

// SubRegionsOf returns the ordered sub-regions of region, or nil when the
// region is not part of the directory.
func (d Directory) SubRegionsOf(region string) []string {
	canonical, ok := d.Lookup(region)
	if !ok {
		return nil
	}

	subs := d.subRegions[canonical]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// Lookup resolves a user-supplied region name to its canonical spelling.
func (d Directory) Lookup(region string) (string, bool) {
	canonical, ok := d.index[normalize(region)]
	return canonical, ok
}

// Contains reports whether subRegion is listed under region.
func (d Directory) Contains(region, subRegion string) bool {
	canonical, ok := d.Lookup(region)
	if !ok {
		return false
	}

	want := normalize(subRegion)
	for _, sub := range d.subRegions[canonical] {
		if normalize(sub) == want {
			return true
		}
	}
	return false
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
