package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	LogLevel  string `help:"Log level (debug, info, warn, error)." enum:"debug,info,warn,error" default:"warn"`
	NoColor   bool   `help:"Disable coloured output." name:"no-color"`
}

type Commands struct {
	Globals

	Check     CheckCmd     `cmd:"" help:"Check an e-Tax xtx filing for consistency."`
	ListRules ListRulesCmd `cmd:"" name:"list-rules" help:"List the available rules."`
	Explain   ExplainCmd   `cmd:"" help:"Explain a rule."`
	Init      InitCmd      `cmd:"" help:"Write a starter config file."`
	Doctor    DoctorCmd    `cmd:"" help:"Doctor utilities for debugging xtx files."`
	Serve     ServeCmd     `cmd:"" help:"Start a local HTTP API that re-checks a filing on change."`
}
