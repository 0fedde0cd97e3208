package grid

// defaultAuthorities lists the lower-48 balancing authorities that report to
// the EIA-930 Hourly Electric Grid Monitor.
var defaultAuthorities = []string{
	"AEC", "AECI", "AVA", "AVRN", "AZPS", "BANC", "BPAT", "CHPD", "CISO", "CPLE",
	"CPLW", "DEAA", "DOPD", "DUK", "EPE", "ERCO", "FMPP", "FPC", "FPL", "GCPD",
	"GLHB", "GRID", "GRIF", "GVL", "GWA", "HGMA", "HST", "IID", "IPCO", "ISNE",
	"JEA", "LDWP", "LGEE", "MISO", "NEVP", "NSB", "NWMT", "NYIS", "PACE", "PACW",
	"PGE", "PJM", "PNM", "PSCO", "PSEI", "SC", "SCEG", "SCL", "SEC", "SEPA",
	"SOCO", "SPA", "SRP", "SWPP", "TAL", "TEC", "TEPC", "TIDC", "TPWR", "TVA",
	"WACM", "WALC", "WAUW", "WWA", "YAD",
}

// defaultFactors are lifecycle CO2-equivalent factors in gCO2eq/kWh, keyed by
// EIA-930 fuel code.
var defaultFactors = map[string]float64{
	"WAT": 4,
	"NUC": 16,
	"SUN": 46,
	"GAS": 469,
	"WND": 12,
	"COL": 1000,
	"OIL": 840,
	"OTH": 439,
	"UNK": 439,
	"BIO": 230,
	"GEO": 42,
}

// DefaultRegistry returns a fresh registry of the built-in authorities.
func DefaultRegistry() *Registry {
	return MustRegistry(defaultAuthorities...)
}

// DefaultFactorTable returns a fresh table of the built-in factors.
func DefaultFactorTable() *FactorTable {
	t, err := NewFactorTable(defaultFactors)
	if err != nil {
		panic(err)
	}
	return t
}
