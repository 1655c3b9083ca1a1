package sat

// Configuration selects which of VSIDS, restarts, and clause-database
// reduction are active in a solve. It is a closed, tagged enumeration
// dispatched by a single Solve entry point — never runtime patching of
// entry points.
type Configuration uint8

const (
	// ConfigDPLL runs the chronological-backtracking DPLL variant: no
	// learning, no VSIDS, no restarts.
	ConfigDPLL Configuration = iota
	// ConfigCDCLBasic runs CDCL with 1-UIP learning but a static
	// first-unassigned branching order, no restarts.
	ConfigCDCLBasic
	// ConfigCDCLVSIDS adds VSIDS branching, still no restarts. Phase
	// saving is governed by Options.PhaseSaving in every configuration.
	ConfigCDCLVSIDS
	// ConfigCDCLVSIDSLuby adds Luby-scheduled restarts and learned-clause
	// database reduction on top of ConfigCDCLVSIDS. This is the
	// full-featured configuration.
	ConfigCDCLVSIDSLuby
)

func (c Configuration) String() string {
	switch c {
	case ConfigDPLL:
		return "dpll"
	case ConfigCDCLBasic:
		return "cdcl_basic"
	case ConfigCDCLVSIDS:
		return "cdcl_vsids"
	case ConfigCDCLVSIDSLuby:
		return "cdcl_vsids_luby"
	default:
		return "unknown"
	}
}

// ParseConfiguration maps a CLI/JSON name to a Configuration.
func ParseConfiguration(name string) (Configuration, bool) {
	switch name {
	case "dpll":
		return ConfigDPLL, true
	case "cdcl_basic":
		return ConfigCDCLBasic, true
	case "cdcl_vsids":
		return ConfigCDCLVSIDS, true
	case "cdcl_vsids_luby":
		return ConfigCDCLVSIDSLuby, true
	default:
		return 0, false
	}
}

// Options configures decay rates and the reduction schedule. It is passed
// by value into NewSolver; the core never reads environment variables or
// files for configuration.
type Options struct {
	ClauseDecay          float64
	VariableDecay        float64
	PhaseSaving          bool
	ReduceDBFirstTrigger int64
	ReduceDBGrowth       float64
}

// DefaultOptions holds empirically-tuned defaults.
var DefaultOptions = Options{
	ClauseDecay:          0.999,
	VariableDecay:        0.95,
	PhaseSaving:          true,
	ReduceDBFirstTrigger: 2000,
	ReduceDBGrowth:       1.1,
}
