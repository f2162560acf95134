package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/game"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	apiListen  = ":3005"
	promEnable = true
	promListen = ":9000"
)

func init() {
	serveCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve one game over http and websocket",
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(false); err != nil {
			return err
		}
		return serve()
	},
}

func serve() error {
	hub := api.NewHub()
	g, err := game.New(gameConfig(), game.WithDraw(game.MultiDraw(hub.Draw, game.LogDraw)))
	if err != nil {
		return err
	}
	g.Ready()
	srv := api.New(apiListen, g, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigs:
			log.WithField("signal", s).Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(srv.WaitForExit)

	metrics := prometheus()
	if metrics != nil {
		eg.Go(func() error {
			err := metrics.ListenAndServe()
			if err == http.ErrServerClosed {
				return nil
			}
			return err
		})
	}

	eg.Go(func() error {
		<-egCtx.Done()
		g.Pause()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if metrics != nil {
			if err := metrics.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("prometheus exporter did not shut down cleanly")
			}
		}
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// prometheus returns the metrics server, or nil when metrics are disabled.
func prometheus() *http.Server {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return nil
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	r := http.NewServeMux()
	r.Handle("/metrics", promhttp.Handler())
	return &http.Server{Addr: promListen, Handler: r}
}
