package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

func helpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	useColor := helpWantsColor()
	_, _ = fmt.Fprintln(ctx.Stdout, helpHeader(useColor))
	_, _ = fmt.Fprintln(ctx.Stdout)
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if options.Summary {
		return nil
	}
	_, _ = fmt.Fprintln(ctx.Stdout)
	for _, line := range helpExtras() {
		_, _ = fmt.Fprintln(ctx.Stdout, line)
	}
	return nil
}

func helpHeader(useColor bool) string {
	if !useColor {
		return fmt.Sprintf("%s %s", appName, version)
	}
	return "\x1b[1m\x1b[35m" + appName + "\x1b[0m" + " " + "\x1b[1m" + version + "\x1b[0m"
}

func helpWantsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termEnv := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if termEnv == "" || termEnv == "dumb" {
		return false
	}
	return isTerminal(os.Stdout)
}

func helpExtras() []string {
	return []string{
		"Keys: ↓/j/space next, ↑/k previous, d page details, ? more keys, q quit.",
		"Environment: QUOTESWIPE_TARGET_COUNT, QUOTESWIPE_SEED_FILE, QUOTESWIPE_PALETTE,",
		"             QUOTESWIPE_DEBUG, QUOTESWIPE_LOG_FILE (also read from ./.env).",
	}
}
