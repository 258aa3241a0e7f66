package model

// ResourceVersion is the LV2 resource version carried by lv2:minorVersion
// and lv2:microVersion. The zero value means unversioned.
type ResourceVersion struct {
	Minor int
	Micro int
}

// IsZero reports whether no version was specified.
func (v ResourceVersion) IsZero() bool { return v.Minor == 0 && v.Micro == 0 }

// Stable reports whether the version marks a stable release: both numbers
// even and the minor version non-zero.
func (v ResourceVersion) Stable() bool {
	return v.Minor > 0 && v.Minor%2 == 0 && v.Micro%2 == 0
}

// PreRelease reports whether the version marks development state: an odd
// minor or micro number.
func (v ResourceVersion) PreRelease() bool {
	return v.Minor%2 == 1 || v.Micro%2 == 1
}
