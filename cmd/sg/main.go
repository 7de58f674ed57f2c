package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/sg/pkg/sg/config"
	"github.com/komsit37/sg/pkg/sg/filter"
	"github.com/komsit37/sg/pkg/sg/logging"
	"github.com/komsit37/sg/pkg/sg/pipeline"
	"github.com/komsit37/sg/pkg/sg/render"
	"github.com/komsit37/sg/pkg/sg/source"
	"github.com/komsit37/sg/pkg/sg/ui"
	"github.com/komsit37/sg/pkg/sg/view"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:          "sg",
		Short:        "Simulated stock growth analysis",
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.Duration("delay", view.DefaultDelay, "artificial analysis delay")
	pf.String("data", "", "YAML result fixture (default: built-in reference set)")
	pf.String("filter", "", "show panels whose symbol or sector match: NVDA,META | AV* | /regex/ | substring")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-file", "", "append logs to this file instead of stderr")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one analysis and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(v, cfgFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer env.close()

			rnd, err := render.ByFormat(env.cfg.Format)
			if err != nil {
				return err
			}
			width := env.cfg.Width
			if width == 0 && env.cfg.Format == "text" {
				width = detectTerminalWidth()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := &pipeline.Runner{
				View:     env.view,
				Renderer: rnd,
				Writer:   cmd.OutOrStdout(),
				Now:      time.Now,
			}
			err = runner.Execute(ctx, pipeline.ExecuteOptions{
				Filter:       env.filter,
				ShowProgress: env.cfg.Progress,
				Render: render.RenderOptions{
					Color:      env.cfg.Color,
					PrettyJSON: env.cfg.Pretty,
					Width:      width,
				},
			})
			if err != nil {
				env.log.WithError(err).Errorln("analyze")
			}
			return err
		},
	}
	af := analyzeCmd.Flags()
	af.StringP("format", "f", "text", fmt.Sprintf("output format %v", render.Formats()))
	af.Bool("color", true, "colorize text output")
	af.Bool("pretty", true, "indent JSON output")
	af.Bool("progress", false, "also print the idle and busy frames")
	af.Int("width", 0, "max text row width (0: terminal width)")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive terminal view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr belongs to the terminal UI; only log when a file is set.
			env, err := setup(v, cfgFile, io.Discard)
			if err != nil {
				return err
			}
			defer env.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			env.log.Infoln("ui started")
			err = ui.Run(ctx, env.view, ui.Options{Filter: env.filter, Now: time.Now, Logger: env.log})
			env.log.Infoln("ui stopped")
			return err
		},
	}

	rootCmd.AddCommand(analyzeCmd, uiCmd)

	if err := config.BindFlags(v, pf); err != nil {
		panic(err)
	}
	if err := config.BindFlags(v, af); err != nil {
		panic(err)
	}
	return rootCmd
}

// runEnv is the wiring shared by every command.
type runEnv struct {
	cfg    config.Config
	log    *log.Logger
	view   *view.View
	filter filter.Filter
	closer io.Closer
}

func (e *runEnv) close() {
	e.view.Close()
	if e.closer != nil {
		e.closer.Close()
	}
}

func setup(v *viper.Viper, cfgFile string, logOut io.Writer) (*runEnv, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	env := &runEnv{cfg: cfg}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		env.closer = f
	}
	if env.log, err = logging.New(cfg.LogLevel, logOut); err != nil {
		if env.closer != nil {
			env.closer.Close()
		}
		return nil, err
	}

	var src source.Source = source.StaticSource{}
	if cfg.Data != "" {
		src = source.YAMLSource{Path: cfg.Data}
	}
	// Validated by config.Load.
	env.filter, _ = filter.Parse(cfg.Filter)

	env.view = view.New(src, view.WithDelay(cfg.Delay))
	env.view.Subscribe(logging.Observer(env.log))
	env.log.WithField("delay", cfg.Delay).WithField("data", cfg.Data).Debugln("view ready")
	return env, nil
}
