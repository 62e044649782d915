package synccmd

// FeatureGates exposes runtime feature toggles required by sync command
// handlers. Callers supply closures reading from the runtime config so
// handlers stay decoupled from configuration.
type FeatureGates struct {
	SyncEnabled func() bool
}

func (g FeatureGates) syncEnabled() bool {
	if g.SyncEnabled == nil {
		return true
	}
	return g.SyncEnabled()
}
