package config

// CliOnlyOptions are options that are in no way persisted to the
// application config file and can only be specified on the command line.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}
