package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Variant      string
	Period       string
	Unit         string
	Currency     string
	ReportName   string
	ReportType   []string
	Dir          string
	Ticker       bool
	TickerCycles int
	Interactive  bool
	LogLevel     string
}
