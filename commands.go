package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecoshredder/spritegen/internal/app"
	"github.com/ecoshredder/spritegen/internal/assets"
	"github.com/ecoshredder/spritegen/internal/catalog"
	"github.com/ecoshredder/spritegen/internal/glyph"
	"github.com/ecoshredder/spritegen/internal/report"
	"github.com/ecoshredder/spritegen/internal/sprite"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg         Config
	fbDevice    string
	previewHold time.Duration
	logger      app.Logger = app.NoopLogger{}
	debugLog    *os.File
)

var rootCmd = &cobra.Command{
	Use:   "spritegen",
	Short: "Generate bin and item sprites for the Eco-Shredder sorting game",
	Long: `spritegen renders every bin and item in the sprite catalog and writes
<out>/<name>.png. Existing files are overwritten.

Run without arguments to generate the built-in catalog into ./assets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the catalog and write PNG files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the sprite catalog without rendering",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		rows := make([]report.Row, 0, cat.Len())
		for _, e := range cat.Entries() {
			rows = append(rows, report.Row{Kind: e.Kind, Name: e.Name(), Color: e.Color().Hex(), Emblem: e.Emblem(), Label: e.Bin.Label})
		}
		report.PrintCatalog(os.Stdout, rows)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the rendered catalog on the Linux framebuffer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return a.Preview(cmd.Context(), fbDevice, previewHold)
	},
}

func init() {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	defaults, err := DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		defaults = Config{OutDir: defaultOutDir}
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.OutDir, "out", "o", defaults.OutDir, "output directory; also configurable via "+EnvOutDir)
	flags.StringVarP(&cfg.Catalog, "catalog", "c", defaults.Catalog, "YAML sprite catalog (default: built-in table); also configurable via "+EnvCatalog)
	flags.StringSliceVar(&cfg.FontDirs, "font-dir", defaults.FontDirs, "extra directory searched for font files; also configurable via "+EnvFontDirs)
	flags.BoolVar(&cfg.Debug, "debug", defaults.Debug, "enable debug logging to "+debugLogPath)
	flags.StringVar(&cfg.StdioLog, "stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)

	previewCmd.Flags().StringVar(&fbDevice, "device", defaultFBDevice, "framebuffer device")
	previewCmd.Flags().DurationVar(&previewHold, "hold", 0, "return after this long (default: until interrupted)")

	rootCmd.AddCommand(generateCmd, listCmd, previewCmd)
}

// Execute runs the root command until done or interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Runs on failed commands too, where cobra skips post-run hooks.
	defer teardown()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func setup() error {
	// Best-effort: crashes stay diagnosable when the console is a framebuffer.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}
	if cfg.Debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			debugLog = f
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}
	return nil
}

func teardown() {
	if debugLog == nil {
		return
	}
	logger.Infof("main", "debug logging finished")
	if err := debugLog.Close(); err != nil {
		fmt.Println("debug log close error:", err)
	}
	debugLog = nil
	logger = app.NoopLogger{}
}

func loadCatalog() (catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.Catalog)
}

// newResolver searches user font dirs, then system dirs, then embedded fonts.
func newResolver() *glyph.Resolver {
	var sources []glyph.FontSource
	sources = append(sources, glyph.DirSources(cfg.FontDirs)...)
	sources = append(sources, glyph.DirSources(glyph.SystemFontDirs())...)
	sources = append(sources, glyph.EmbeddedSource(assets.Fonts))

	r := glyph.NewResolver(sources...)
	r.Logger = logger
	return r
}

func newApp() (*app.App, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	fonts := newResolver()
	a := app.New(cat, sprite.NewBinRenderer(fonts), sprite.NewItemRenderer(fonts), cfg.OutDir)
	a.Logger = logger
	return a, nil
}

func runGenerate(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	a.Reporter = report.NewConsole(os.Stdout)
	_, err = a.Generate(ctx)
	return err
}
