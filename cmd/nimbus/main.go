package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/nimbus/internal/app"
	"github.com/lox/nimbus/internal/feed"
	"github.com/lox/nimbus/internal/logging"
	"github.com/lox/nimbus/internal/metrics"
	"github.com/lox/nimbus/internal/models"
	"github.com/lox/nimbus/internal/scene"
	"github.com/lox/nimbus/internal/surface"
)

type CLI struct {
	City string `arg:"" optional:"" help:"City name (e.g. 'London', 'Bengaluru'). Omit to auto-detect."`

	EnvFile kongdotenv.ENVFileConfig `name:"env-file" help:"Read NIMBUS_* settings from this .env file." placeholder:"PATH"`

	Demo        string `help:"Run in demo mode with no network: sun, rain, snow, cloud, thunder or fog." env:"NIMBUS_DEMO" placeholder:"TYPE"`
	FPS         int    `name:"fps" help:"Frames per second (1-60)." default:"20" env:"NIMBUS_FPS"`
	LogFile     string `name:"log-file" help:"Append logs to this file." env:"NIMBUS_LOG_FILE" type:"path"`
	LogLevel    string `name:"log-level" help:"Log level: debug, info, warn or error." default:"info" env:"NIMBUS_LOG_LEVEL"`
	MetricsAddr string `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)." env:"NIMBUS_METRICS_ADDR"`
	WttrURL     string `name:"wttr-url" help:"Base URL of the wttr.in service." default:"https://wttr.in" env:"NIMBUS_WTTR_URL"`
	IPInfoURL   string `name:"ipinfo-url" help:"URL used to look up your city when none is given." default:"https://ipinfo.io/json" env:"NIMBUS_IPINFO_URL"`
}

func (c *CLI) Validate() error {
	if c.Demo != "" {
		if _, ok := models.ParseWeatherType(c.Demo); !ok {
			return fmt.Errorf("--demo must be one of sun, rain, snow, cloud, thunder, fog (got %q)", c.Demo)
		}
	}
	if c.FPS < 1 || c.FPS > 60 {
		return fmt.Errorf("--fps must be between 1 and 60 (got %d)", c.FPS)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

var (
	errDeclined    = errors.New("declined demo mode")
	errInterrupted = errors.New("interrupted")
)

// dotenvFile is picked up from the working directory when present. Values
// already set in the environment win over it.
const dotenvFile = ".env"

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("nimbus"),
		kong.Description("Animated ASCII weather in your terminal."),
		kong.Configuration(kongdotenv.ENVFileReader, dotenvFile),
		kong.UsageOnError(),
	)
	os.Exit(run(&cli))
}

func run(cli *CLI) int {
	level, _ := logging.ParseLevel(cli.LogLevel)
	logger, closeLog, err := logging.Open(cli.LogFile, level, scene.Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, err := newSource(ctx, cli, logger, os.Stdin, os.Stdout)
	switch {
	case errors.Is(err, errInterrupted):
		return 0
	case errors.Is(err, errDeclined):
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		return 1
	}

	if cli.MetricsAddr != "" {
		go func() {
			logger.Info("serving metrics", "addr", cli.MetricsAddr)
			if err := metrics.NewServer(cli.MetricsAddr).Run(ctx); err != nil {
				logger.Error("metrics server", "error", err)
			}
		}()
	}

	fmt.Println("Starting Nimbus…")
	fmt.Println("Controls:  R = refresh weather   Q = quit")
	fmt.Println()
	time.Sleep(400 * time.Millisecond)

	term, err := surface.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		return 1
	}
	defer term.Close()

	loop := app.New(term, source, app.Config{FPS: cli.FPS, Logger: logger})
	err = loop.Run(ctx)
	term.Close()
	logger.Info("exit", "frames", loop.Frame())
	if err != nil {
		logger.Error("render loop", "error", err)
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		return 1
	}

	fmt.Println("\nThanks for using Nimbus! 🌤")
	return 0
}

// newSource picks the weather source. When no demo was asked for and the
// weather service cannot even be resolved, the user is offered the sun
// demo instead. An interrupt during that check skips the offer.
func newSource(ctx context.Context, cli *CLI, logger *slog.Logger, in io.Reader, out io.Writer) (feed.Source, error) {
	if cli.Demo != "" {
		weather, _ := models.ParseWeatherType(cli.Demo)
		logger.Info("demo mode", "weather", weather)
		return feed.NewDemo(weather), nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := feed.Resolvable(lookupCtx, cli.WttrURL); err != nil {
		if ctx.Err() != nil {
			return nil, errInterrupted
		}
		logger.Warn("weather service unreachable", "error", err)
		if !promptDemo(in, out) {
			return nil, errDeclined
		}
		return feed.NewDemo(models.Sun), nil
	}

	var locator *feed.Locator
	if cli.City == "" {
		locator = feed.NewLocator(cli.IPInfoURL)
	}
	logger.Info("live mode", "city", cli.City)
	return feed.NewWttr(cli.WttrURL, cli.City, locator, logger), nil
}

func promptDemo(in io.Reader, out io.Writer) bool {
	fmt.Fprintln(out, "Note: the weather service could not be reached.")
	fmt.Fprintln(out, "      Check your connection, or run offline:  nimbus --demo rain")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Run in demo (sun) mode instead? [Y/n]: ")

	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
