package cli

import "mtc/internal/config"

// Flags holds command-line flags
type Flags struct {
	Dir         string
	Platform    string
	NameFilter  string
	From        string
	ReportPath  string
	Verbose     bool
	LogFormat   string
	NewName     string
	NewPlatform string
	NewPriority string
	NewAuthor   string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Dir:         f.Dir,
		Platform:    f.Platform,
		NameFilter:  f.NameFilter,
		From:        f.From,
		ReportPath:  f.ReportPath,
		Verbose:     f.Verbose,
		LogFormat:   f.LogFormat,
		NewName:     f.NewName,
		NewPlatform: f.NewPlatform,
		NewPriority: f.NewPriority,
		NewAuthor:   f.NewAuthor,
	}
}
