package decode

import "github.com/mferrera/seismic-forward"

// ReadTwtShift loads the optional TWT-shift grid (§6, Config.TwtFile)
// with the same GridSpec as the earth-model grids, so a file whose size
// does not match that shape is rejected. The comparison against the
// earth model's own TWT grid (§7 kind 1's fatal dimension check) is
// ValidateTwtShift, which ReadEarthModel runs after attaching it.
func ReadTwtShift(uri, configURI string, spec GridSpec) (*seismic.Grid3D, error) {
	return ReadGrid3D(uri, configURI, spec)
}
