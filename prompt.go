package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/lipgloss"
)

var (
	userStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	hostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cwdStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	rootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	symStyle  = lipgloss.NewStyle().Bold(true)
)

// Prompt builds the "user@host cwd% " line shown before every read,
// colored the same way as the original (bold user, yellow host, green
// cwd) unless the config disables color.
func Prompt(cfg *Config) string {
	name := "?"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}

	host, err := os.Hostname()
	if err != nil {
		host = "?"
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}

	isRoot := os.Geteuid() == 0
	sym := cfg.userSymbol("%")
	symRendered := symStyle.Render(sym)
	if isRoot {
		sym = cfg.rootSymbol("#")
		symRendered = rootStyle.Render(sym)
	}

	if cfg.noColor() {
		return fmt.Sprintf("%s@%s %s%s ", name, host, cwd, sym)
	}

	return fmt.Sprintf("%s@%s %s%s ",
		userStyle.Render(name),
		hostStyle.Render(host),
		cwdStyle.Render(cwd),
		symRendered,
	)
}
