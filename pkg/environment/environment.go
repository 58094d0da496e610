package environment

import "strings"

// Environment names the deployment the page server runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a raw APP_ENV value, including the short aliases, to an
// Environment. Anything unrecognised is treated as Development.
func Parse(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

// IsProduction reports whether verbose diagnostics must stay off.
func (e Environment) IsProduction() bool { return e == Production }
