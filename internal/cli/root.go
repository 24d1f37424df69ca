// Package cli, qb komut satırı aracını içerir. Sorgu tanım dosyalarını
// SELECT ifadelerine dönüştürür; hiçbir zaman veritabanına bağlanmaz.
//
// Yapılandırma önceliği: bayraklar, ortam değişkenleri (QB_*), .env dosyaları
// ve son olarak .qb.yaml.
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	querybuilder "github.com/biyonik/go-query-builder"
)

// App carries the process resources the commands use, so tests can swap them.
type App struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	viper  *viper.Viper
	config *Config
	logger *slog.Logger
}

// NewApp returns an App bound to the real filesystem and standard streams.
func NewApp() *App {
	return &App{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs the qb command line with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(NewApp()).ExecuteContext(ctx)
}

// NewRootCommand, app için komut ağacını kurar. Bayrak bağlama hatası bir
// programlama hatasıdır ve panic ile sonuçlanır.
func NewRootCommand(app *App) *cobra.Command {
	app.viper = newViper(app.Fs)

	var configFile string
	var noColor bool

	cmd := &cobra.Command{
		Use:           "qb",
		Short:         "Render SELECT statements from query definitions",
		Long:          "qb turns YAML or JSON query definitions into literal SQL SELECT statements.",
		Version:       querybuilder.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app.Fs, app.viper, configFile)
			if err != nil {
				return err
			}
			if noColor {
				cfg.Color = false
			}
			color.NoColor = !cfg.Color

			app.config = cfg
			app.logger = newLogger(app.Stderr, cfg.Debug)
			app.logger.Debug("config loaded",
				slog.String("dialect", cfg.Dialect),
				slog.Bool("strict", cfg.Strict),
				slog.String("file", app.viper.ConfigFileUsed()),
			)
			return nil
		},
	}

	cmd.SetIn(app.Stdin)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default .qb.yaml in ., $HOME or $HOME/.config/qb)")
	flags.StringP("dialect", "d", "mysql", "SQL dialect: mysql or postgres")
	flags.Bool("strict", false, "fail when a table, column, operator or direction is invalid")
	flags.Bool("debug", false, "log debug output to stderr")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	for _, name := range []string{"dialect", "strict", "debug"} {
		if err := app.viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("cli: bind flag %q: %v", name, err))
		}
	}

	cmd.AddCommand(newRenderCommand(app))
	cmd.AddCommand(newVersionCommand(app))

	return cmd
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(app.Stdout, "qb version "+querybuilder.Version+"\n")
			return err
		},
	}
}
