package cli

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fekuna/omnipos-register/config"
	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/fekuna/omnipos-register/internal/pkg/logger"
	"github.com/fekuna/omnipos-register/internal/server"
	"github.com/fekuna/omnipos-register/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ServeOptions struct {
	*RootOptions
	Port string
	Demo bool
}

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the register gRPC server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Port, "port", rootOpts.Config.Server.GRPCPort, "gRPC listen port")
	cmd.Flags().BoolVar(&opts.Demo, "demo", rootOpts.Config.Store.DemoCatalog, "seed the demo catalog")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	cfg := opts.Config

	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	storeCfg := cfg.Store
	storeCfg.DemoCatalog = opts.Demo
	storeOpts, err := storeOptions(storeCfg)
	if err != nil {
		appLogger.Error("invalid store configuration", zap.Error(err))
		return err
	}
	st := store.New(storeOpts...)

	srvCfg := cfg.Server
	srvCfg.GRPCPort = opts.Port
	lis, err := net.Listen("tcp", srvCfg.ListenAddr())
	if err != nil {
		appLogger.Error("failed to listen", zap.String("addr", srvCfg.ListenAddr()), zap.Error(err))
		return err
	}

	appLogger.Info("register ready",
		zap.String("site_name", st.Settings().SiteName),
		zap.String("currency", st.Settings().Currency),
		zap.Int("products", len(st.Products())),
		zap.Int("payment_methods", len(st.PaymentMethods())),
	)
	return server.Run(ctx, server.New(st, appLogger), lis, appLogger)
}

func newLogger(cfg *config.Config) logger.ZapLogger {
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}
	return logger.NewZapLogger(logConfig)
}

// storeOptions turns the startup configuration into store options. Cash is
// always registered, whether or not it is listed.
func storeOptions(cfg config.StoreConfig) ([]store.Option, error) {
	settings := model.Settings{SiteName: strings.TrimSpace(cfg.SiteName), Currency: cfg.Currency}
	if settings.SiteName == "" {
		return nil, model.Invalidf("site name is required")
	}
	if !model.IsSupportedCurrency(settings.Currency) {
		return nil, model.Invalidf("unsupported currency %q", settings.Currency)
	}

	opts := []store.Option{store.WithSettings(settings)}
	if len(cfg.PaymentMethods) > 0 {
		methods := []model.PaymentMethod{{ID: "cash", Name: model.CashMethodName, Enabled: true}}
		seen := map[string]bool{"cash": true}
		for _, name := range cfg.PaymentMethods {
			id := strings.ToLower(strings.Join(strings.Fields(name), "-"))
			if seen[id] {
				continue
			}
			seen[id] = true
			methods = append(methods, model.PaymentMethod{ID: id, Name: name, Enabled: true})
		}
		opts = append(opts, store.WithPaymentMethods(methods...))
	}
	if cfg.DemoCatalog {
		opts = append(opts, store.WithDemoCatalog())
	}
	return opts, nil
}
