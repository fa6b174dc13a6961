package cli

import "osctest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Sequence   string
	EnvFile    string
	Progress   bool
	Verbose    bool
	NameFilter string
	ExportPath string
	ListenAddr string
	TUI        bool
}

// ToConfigFlags converts CLI flags to config flags. host is the optional positional argument.
func (f *Flags) ToConfigFlags(host string) config.Flags {
	return config.Flags{
		Host:       host,
		Sequence:   f.Sequence,
		EnvFile:    f.EnvFile,
		Progress:   f.Progress,
		Verbose:    f.Verbose,
		NameFilter: f.NameFilter,
		ExportPath: f.ExportPath,
		ListenAddr: f.ListenAddr,
		TUI:        f.TUI,
	}
}
