// Package region holds the compiled-in two-level administrative geography
// (wilaya → commune) used for address selection, together with the delivery
// tariff matrix keyed by wilaya.
//
// Both tables are static: no I/O happens at call time and nothing here
// returns an error. Lookups are case-insensitive and ignore surrounding
// spaces; results always carry the canonical spelling.
//
// Example:
//
//	dir := region.NewDirectory()
//	communes := dir.SubRegionsOf("Blida") // ["Blida", "Boufarik", ...]
//
//	tariffs := region.NewTariffTable()
//	fee, ok := tariffs.FeeOf("Blida", region.Home) // 590, true
//	_, ok = tariffs.FeeOf("Atlantis", region.Home) // ok == false
package region
