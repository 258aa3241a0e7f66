// Package main provides the lv2meta binary entry point.
// lv2meta inspects LV2 plugin bundles: it loads a bundle directory's
// Turtle documents, validates them, and can rewrite the bundle in
// normalized form. The binary is a thin shell around the library; all
// semantics live in the bundle, mapper, validate and export packages.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/c360studio/lv2meta/bundle"
	"github.com/c360studio/lv2meta/config"
	"github.com/c360studio/lv2meta/vocabulary"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "lv2meta"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	logLevel   string
	extensions string
	pattern    string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "lv2meta",
		Short: "LV2 bundle metadata tool",
		Long: `lv2meta loads the Turtle metadata of an LV2 plugin bundle, checks it
against the structural rules hosts rely on, and can rewrite the bundle
in normalized form.

A bundle directory is expected to contain manifest.ttl plus the data
documents it references.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&f.extensions, "extensions", "", "Extension vocabulary file (YAML)")
	cmd.PersistentFlags().StringVar(&f.pattern, "pattern", "", "Glob matching bundle documents (default **/*.ttl)")

	cmd.AddCommand(validateCmd(&f))
	cmd.AddCommand(exportCmd(&f))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func validateCmd(f *flags) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate a bundle directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(f, args)
			if err != nil {
				return err
			}
			if !watch {
				return env.validateOnce()
			}
			return env.watch(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Revalidate whenever the bundle changes")
	return cmd
}

func exportCmd(f *flags) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Rewrite a bundle in normalized form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(f, args)
			if err != nil {
				return err
			}
			return env.export(outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// env is the resolved execution environment: configuration, registry, and
// the bundle directory to operate on.
type env struct {
	cfg      *config.Config
	registry *vocabulary.Registry
	dir      string
}

func setup(f *flags, args []string) (*env, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, err
	}
	configureLogging(cfg.Log.Level)

	dir := cfg.Bundle.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return nil, fmt.Errorf("no bundle directory given (argument or bundle.dir in config)")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve bundle dir: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("stat bundle dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", absDir)
	}

	registry, err := buildRegistry(cfg.Extensions.Path)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, registry: registry, dir: absDir}, nil
}

func loadConfig(f *flags) (*config.Config, error) {
	var cfg *config.Config
	if f.configPath != "" {
		loaded, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		loaded, err := config.NewLoader(nil).Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags override the file layers.
	cfg.Merge(&config.Config{
		Log:        config.LogConfig{Level: f.logLevel},
		Bundle:     config.BundleConfig{Pattern: f.pattern},
		Extensions: config.ExtensionsConfig{Path: f.extensions},
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func configureLogging(level string) {
	lv := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
	slog.SetDefault(logger)
}

func buildRegistry(extensionsPath string) (*vocabulary.Registry, error) {
	registry := vocabulary.Default()
	if extensionsPath == "" {
		return registry, nil
	}
	data, err := os.ReadFile(extensionsPath)
	if err != nil {
		return nil, fmt.Errorf("read extensions file: %w", err)
	}
	registry, err = registry.WithExtensions(data)
	if err != nil {
		return nil, fmt.Errorf("load extensions: %w", err)
	}
	slog.Debug("Loaded extension vocabulary", "path", extensionsPath)
	return registry, nil
}

// readDocuments resolves the bundle directory into the name-to-bytes map
// the library consumes. The manifest is always included; satellite
// documents are matched by the configured glob.
func (e *env) readDocuments() (map[string][]byte, error) {
	fsys := os.DirFS(e.dir)
	names, err := doublestar.Glob(fsys, e.cfg.Bundle.Pattern)
	if err != nil {
		return nil, fmt.Errorf("match bundle documents: %w", err)
	}

	docs := make(map[string][]byte)
	read := func(name string) error {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		docs[name] = data
		return nil
	}
	for _, name := range names {
		if err := read(name); err != nil {
			return nil, err
		}
	}
	if _, ok := docs[bundle.ManifestName]; !ok {
		if err := read(bundle.ManifestName); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func (e *env) baseIRI() string {
	return "file://" + filepath.ToSlash(e.dir) + "/"
}

func (e *env) load() (*bundle.Report, bool) {
	docs, err := e.readDocuments()
	if err != nil {
		slog.Error("Failed to read bundle", "dir", e.dir, "error", err)
		return nil, false
	}
	slog.Debug("Loaded documents", "count", len(docs))

	_, report := bundle.Load(docs, e.baseIRI(), bundle.WithRegistry(e.registry))
	return report, true
}

func (e *env) validateOnce() error {
	report, ok := e.load()
	if !ok {
		return fmt.Errorf("could not read bundle %s", e.dir)
	}
	return logReport(report, e.dir)
}

func logReport(report *bundle.Report, dir string) error {
	for _, serr := range report.Syntax {
		slog.Error("Syntax error", "document", serr.Document, "line", serr.Line, "col", serr.Col, "detail", serr.Error())
	}
	for _, w := range report.Warnings {
		slog.Warn("Mapping warning", "subject", w.Subject, "reason", w.Reason)
	}
	for _, verr := range report.Validation {
		slog.Error("Validation error", "code", verr.Code, "subject", verr.Subject, "detail", verr.Detail)
	}
	if !report.OK() {
		total := len(report.Syntax) + len(report.Warnings) + len(report.Validation)
		return fmt.Errorf("bundle %s has %d problems", dir, total)
	}
	slog.Info("Bundle is valid", "dir", dir)
	return nil
}

// watch revalidates the bundle whenever a Turtle document under it
// changes, until interrupted.
func (e *env) watch(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the bundle directory and any subdirectories the glob may
	// reach into.
	err = filepath.WalkDir(e.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch bundle dir: %w", err)
	}

	if err := e.validateOnce(); err != nil {
		slog.Warn("Initial validation failed", "error", err)
	}

	slog.Info("Watching bundle", "dir", e.dir)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watch")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".ttl") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Bundle changed", "file", ev.Name, "op", ev.Op.String())
			if err := e.validateOnce(); err != nil {
				slog.Warn("Bundle invalid", "error", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", werr)
		}
	}
}

// export reloads the bundle and writes its normalized serialization into
// outDir.
func (e *env) export(outDir string) error {
	docs, err := e.readDocuments()
	if err != nil {
		return err
	}
	b, report := bundle.Load(docs, e.baseIRI(), bundle.WithRegistry(e.registry))
	if err := logReport(report, e.dir); err != nil {
		return err
	}

	out, err := bundle.Save(b, bundle.WithRegistry(e.registry))
	if err != nil {
		return fmt.Errorf("serialize bundle: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for name, data := range out {
		path := filepath.Join(outDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		slog.Info("Wrote document", "path", path, "bytes", len(data))
	}
	return nil
}
