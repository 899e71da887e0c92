package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/takaishi/lilgrep/config"
	"github.com/takaishi/lilgrep/logging"
	"github.com/takaishi/lilgrep/search"
	"github.com/takaishi/lilgrep/source"
	"go.uber.org/zap"
)

const (
	argumentProblem    = "Problem parsing arguments:"
	applicationProblem = "Application error:"
)

var problemStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args, os.LookupEnv))
}

func run(stdout, stderr io.Writer, args []string, lookupEnv func(string) (string, bool)) int {
	// Styles are bound to stderr so that a redirected stream gets plain text
	renderer := lipgloss.NewRenderer(stderr)
	report := func(prefix string, err error) int {
		fmt.Fprintf(stderr, "%s %v\n", problemStyle.Renderer(renderer).Render(prefix), err)
		return 1
	}

	logLevel, _ := lookupEnv(logging.Env)
	logger, err := logging.New(logLevel, stderr)
	if err != nil {
		return report(argumentProblem, err)
	}
	defer logger.Sync()

	cfg, err := config.Build(args, config.IgnoreCaseFromEnv(lookupEnv))
	if err != nil {
		return report(argumentProblem, err)
	}
	logger.Debug("resolved configuration",
		zap.String("query", cfg.Query),
		zap.String("file", cfg.FilePath),
		zap.Bool("ignore_case", cfg.IgnoreCase),
	)

	if err := searchFile(stdout, cfg, logger); err != nil {
		return report(applicationProblem, err)
	}
	return 0
}

// searchFile prints the lines of the configured file that match the query
func searchFile(w io.Writer, cfg *config.Config, logger *zap.Logger) error {
	contents, err := source.ReadFile(cfg.FilePath)
	if err != nil {
		return err
	}
	logger.Debug("read file", zap.String("file", cfg.FilePath), zap.Int("bytes", len(contents)))

	var results search.Result
	if cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	} else {
		results = search.Search(cfg.Query, contents)
	}
	logger.Debug("search finished", zap.Int("matches", len(results)))

	out := bufio.NewWriter(w)
	for _, line := range results {
		fmt.Fprintln(out, line)
	}
	return out.Flush()
}
