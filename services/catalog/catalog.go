package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeromicro/go-zero/rest"

	common "github.com/cuihairu/ludotheque/internal/cli/common"
	"github.com/cuihairu/ludotheque/internal/telemetry"
	"github.com/cuihairu/ludotheque/services/catalog/internal/config"
	"github.com/cuihairu/ludotheque/services/catalog/internal/handler"
	"github.com/cuihairu/ludotheque/services/catalog/internal/svc"
)

func main() {
	root := &cobra.Command{
		Use:          "ludotheque",
		Short:        "Video game catalog website",
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
	}
	root.PersistentFlags().StringP("config", "f", "etc/catalog.yaml", "the config file")
	root.PersistentFlags().String("host", "", "listen host (overrides Host)")
	root.PersistentFlags().Int("port", 0, "listen port (overrides Port)")
	root.PersistentFlags().String("db-driver", "", "database driver: sqlite|postgres|mysql|sqlserver|auto")
	root.PersistentFlags().String("db-dsn", "", "database DSN; for sqlite file:path.db or :memory:")
	root.PersistentFlags().String("log-level", "", "debug|info|warn|error")
	root.PersistentFlags().String("seed-file", "", "YAML genre seed file (genres: [...])")
	_ = viper.BindPFlags(root.PersistentFlags())
	viper.SetEnvPrefix("LUDOTHEQUE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Seed the genres and serve the website",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
	})
	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Ensure the seed genres exist, then exit",
		RunE:  func(cmd *cobra.Command, args []string) error { return seed(cmd.Context()) },
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("ludotheque failed", "error", err)
		os.Exit(1)
	}
}

// setup loads the config and routes slog, std log and logx to the configured sink.
func setup() (config.Config, error) {
	c, err := config.Load(viper.GetString("config"), viper.GetViper())
	if err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	w := common.SetupLoggerWithFile(common.LogOptions{
		Level:      c.AppLog.Level,
		Format:     c.AppLog.Format,
		File:       c.AppLog.File,
		MaxSize:    c.AppLog.MaxSize,
		MaxBackups: c.AppLog.MaxBackups,
		MaxAge:     c.AppLog.MaxAge,
		Compress:   c.AppLog.Compress,
	})
	if viper.IsSet("log-level") {
		c.Log.Level = common.LogxLevel(c.AppLog.Level)
	}
	common.BridgeLogx(c.Log, w)
	return c, nil
}

func serve(ctx context.Context) error {
	c, err := setup()
	if err != nil {
		return err
	}

	tp, err := telemetry.NewProvider(ctx, c.Otel)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			slog.Warn("telemetry shutdown", "error", err)
		}
	}()

	sc, err := svc.Bootstrap(ctx, c)
	if err != nil {
		return err
	}
	defer sc.Close()

	server := rest.MustNewServer(c.RestConf, rest.WithNotFoundHandler(handler.NotFoundHandler(sc)))
	defer server.Stop()
	handler.RegisterHandlers(server, sc)

	slog.Info("starting server", "host", c.Host, "port", c.Port, "db", c.Database.Driver, "telemetry", tp.Enabled())
	server.Start()
	slog.Info("server stopped", "logs", common.GetLogCounters())
	return nil
}

func seed(ctx context.Context) error {
	c, err := setup()
	if err != nil {
		return err
	}
	sc, err := svc.NewServiceContext(c)
	if err != nil {
		return err
	}
	defer sc.Close()

	n, err := sc.Seeder.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}
	fmt.Printf("%d genres created, %d in seed list\n", n, len(sc.Seeder.Names()))
	return nil
}
