//go:build !linux

package platform

// portableFIPSMode is used on platforms with no kernel FIPS switch to
// consult. It only honors the env override, defaulting to disabled.
type portableFIPSMode struct{}

// NewFIPSMode returns the non-Linux FIPSMode implementation.
func NewFIPSMode() FIPSMode {
	return portableFIPSMode{}
}

func (portableFIPSMode) Enabled() bool {
	v, _ := envOverride()
	return v
}
