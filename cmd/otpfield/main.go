package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/otpfield/internal/bindings"
	"github.com/unkn0wn-root/otpfield/internal/codeinput"
	"github.com/unkn0wn-root/otpfield/internal/config"
	"github.com/unkn0wn-root/otpfield/internal/telemetry"
	"github.com/unkn0wn-root/otpfield/internal/theme"
	"github.com/unkn0wn-root/otpfield/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliFlags struct {
	fields      int
	value       string
	pattern     string
	placeholder string
	title       string
	themeKey    string
	logFile     string
	mask        bool
	disabled    bool
	debug       bool
	noColor     bool
	inline      bool
	showHelp    bool
	save        bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("otpfield", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f cliFlags
	fs.IntVar(&f.fields, "fields", 0, "Number of character fields (1-32)")
	fs.StringVar(&f.value, "value", "", "Initial code value")
	fs.StringVar(&f.pattern, "pattern", "", "Regular expression every character and paste must match")
	fs.StringVar(&f.placeholder, "placeholder", "", "Character shown in empty fields")
	fs.StringVar(&f.title, "title", "", "Prompt shown above the fields")
	fs.StringVar(&f.themeKey, "theme", "", "Theme key from the themes directory")
	fs.StringVar(&f.logFile, "log-file", "", "Write diagnostics to this file")
	fs.BoolVar(&f.mask, "mask", false, "Hide entered characters")
	fs.BoolVar(&f.disabled, "disabled", false, "Render the fields read-only")
	fs.BoolVar(&f.debug, "debug", false, "Enable development diagnostics")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colours")
	fs.BoolVar(&f.inline, "inline", false, "Render inline instead of using the alternate screen")
	fs.BoolVar(&f.showHelp, "help-keys", false, "Show key help on start")
	fs.BoolVar(&f.save, "save", false, "Write fields, pattern, placeholder, mask, theme and debug flags to the settings file and exit")
	fs.BoolVar(&f.showVersion, "version", false, "Show otpfield version")
	fs.Usage = func() {
		_, _ = fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if f.showVersion {
		_, _ = fmt.Fprintf(stdout, "otpfield %s\n  commit: %s\n  built:  %s\n", version, commit, date)
		return 0
	}

	settings, handle, loadErr := config.LoadSettings()
	if loadErr != nil {
		log.Printf("settings load error: %v", loadErr)
		settings = config.DefaultSettings()
	}
	settings = applyFlags(settings, f, set)

	if f.save {
		return saveSettings(settings, handle, loadErr, stdout, stderr)
	}

	if settings.Debug || f.logFile != "" {
		path := f.logFile
		if path == "" {
			path = filepath.Join(config.Dir(), "debug.log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Printf("log directory: %v", err)
		}
		logf, err := tea.LogToFile(path, "otpfield")
		if err != nil {
			log.Printf("log file: %v", err)
		} else {
			defer func() {
				_ = logf.Close()
			}()
		}
	}

	pattern, err := codeinput.CompilePattern(settings.Input.Pattern)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid pattern: %v\n", err)
		return 2
	}

	if f.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	bindingMap, _, err := bindings.Load(config.Dir())
	if err != nil {
		log.Printf("bindings load error: %v", err)
		bindingMap = bindings.DefaultMap()
	}

	th := selectTheme(settings.DefaultTheme)

	telemetryCfg := telemetry.ConfigFromEnv(os.Getenv)
	telemetryCfg.Version = version
	provider, err := telemetry.New(telemetryCfg)
	if err != nil {
		log.Printf("telemetry init error: %v", err)
		provider = telemetry.Noop()
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := provider.Shutdown(ctx); shutdownErr != nil {
			log.Printf("telemetry shutdown: %v", shutdownErr)
		}
	}()

	var advisory codeinput.AdvisoryFunc
	if settings.Debug {
		advisory = log.Printf
	}

	model := ui.New(ui.Config{
		Input: codeinput.Options{
			Fields:    settings.Input.Fields,
			Value:     f.value,
			Pattern:   pattern,
			Disabled:  f.disabled,
			AutoFocus: settings.Input.AutoFocus,
			Advisory:  advisory,
		},
		Theme:       &th,
		Bindings:    bindingMap,
		Telemetry:   provider,
		Title:       f.title,
		Placeholder: settings.Input.Placeholder,
		Mask:        settings.Input.Mask,
		ShowHelp:    f.showHelp,
	})

	var opts []tea.ProgramOption
	if !f.inline {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	result, ok := final.(ui.Model)
	if !ok {
		return 1
	}
	code, submitted := result.Result()
	if !submitted {
		return 1
	}
	_, _ = fmt.Fprintln(stdout, code)
	return 0
}

// saveSettings refuses to overwrite a settings file that failed to load, so a
// typo in the file is not silently replaced by defaults.
func saveSettings(
	settings config.Settings,
	handle config.SettingsHandle,
	loadErr error,
	stdout, stderr io.Writer,
) int {
	if loadErr != nil {
		_, _ = fmt.Fprintf(stderr, "not saving, current settings are unreadable: %v\n", loadErr)
		return 1
	}
	if _, err := codeinput.CompilePattern(settings.Input.Pattern); err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid pattern: %v\n", err)
		return 2
	}
	if err := config.SaveSettings(settings, handle); err != nil {
		_, _ = fmt.Fprintf(stderr, "save settings: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "saved settings to %s\n", handle.Path)
	return 0
}

// flags only override settings the user actually passed
func applyFlags(s config.Settings, f cliFlags, set map[string]bool) config.Settings {
	if set["fields"] {
		s.Input.Fields = f.fields
	}
	if set["pattern"] {
		s.Input.Pattern = f.pattern
	}
	if set["placeholder"] {
		s.Input.Placeholder = f.placeholder
	}
	if set["mask"] {
		s.Input.Mask = f.mask
	}
	if set["debug"] {
		s.Debug = f.debug
	}
	if set["theme"] {
		s.DefaultTheme = f.themeKey
	}
	s.Input = config.NormaliseInputSettings(s.Input)
	return s
}

func selectTheme(key string) theme.Theme {
	catalog, err := theme.LoadCatalog([]string{config.ThemeDir()})
	if err != nil {
		log.Printf("theme load error: %v", err)
	}
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		key = "default"
	}
	if def, ok := catalog.Get(key); ok {
		return def.Theme
	}
	log.Printf("theme %q not found; using built-in default", key)
	return theme.DefaultTheme()
}

var usageText = heredoc.Doc(`
	Usage: otpfield [flags]

	Prompts for a segmented confirmation code and prints it on submit.
	Exits 1 without output when the prompt is dismissed.

	Patterns are matched against single characters and against whole
	pastes, so write them to accept runs, for example '[0-9]+'.

	Run with --save to store the field, pattern, placeholder, mask, theme
	and debug flags as the new defaults.

	Flags:
`)
