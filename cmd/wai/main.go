package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/singlestore-labs/to-wit/ffi"
	"github.com/singlestore-labs/to-wit/wai"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "wai",
		Short: "Inspect interface-description documents",
		Long:  "wai parses interface-description files and reports their functions, type trees and flat ABI signatures.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger, err := zap.NewDevelopment()
				if err == nil {
					wai.SetLogger(logger)
				}
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// sessionErr turns a failed boundary call into an error carrying the
// session message.
func sessionErr(s *ffi.Session, op string) error {
	msg := s.LastError()
	if msg == "" {
		msg = "unknown failure"
	}
	return fmt.Errorf("%s: %s", op, msg)
}

// parseFile reads and parses one document.
func parseFile(s *ffi.Session, path string) (*ffi.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc *ffi.Document
	if !s.Parse(path, data, &doc) {
		return nil, sessionErr(s, "parse")
	}
	return doc, nil
}
