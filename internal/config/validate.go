package config

import "fmt"

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a repaired copy plus structured errors and
// warnings the UI can render.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.Catalog.Path == "" {
		out.Catalog.Path = Default().Catalog.Path
		res.addWarn("catalog.path was empty; using %q", out.Catalog.Path)
	}
	if out.Digest.Hour < 0 || out.Digest.Hour > 23 {
		res.addErr("digest.hour must be 0..23")
	}
	if out.Limits.RequestsPerSec <= 0 {
		out.Limits.RequestsPerSec = Default().Limits.RequestsPerSec
		res.addWarn("limits.requests_per_sec must be > 0; using %v", out.Limits.RequestsPerSec)
	}
	if out.Limits.Burst <= 0 {
		out.Limits.Burst = Default().Limits.Burst
	}

	return out, res
}
