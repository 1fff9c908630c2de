package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/cubesim/config"
	"github.com/oomph-ac/cubesim/render"
	"github.com/oomph-ac/cubesim/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// The following program runs a sandbox session without a window. A scripted pilot walks, turns,
// jumps and shoots so that every part of the simulation is exercised.
func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file, created if missing")
	frames := flag.Int("frames", 600, "frames to run before exiting, 0 runs until interrupted")
	fast := flag.Bool("fast", false, "run frames back to back instead of at the configured tick rate")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true, FullTimestamp: true}

	if err := run(log, *configPath, *frames, *fast); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		log.Errorf("cubesim: %v", err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, configPath string, frames int, fast bool) error {
	conf, err := config.Read(configPath)
	if err != nil {
		return err
	}
	log.Level = conf.Level()

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warnf("sentry disabled: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	var reg prometheus.Registerer
	if conf.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		reg = registry
		addr := fmt.Sprintf(":%d", conf.Metrics.MetricsPort())
		srv := &http.Server{Addr: addr, Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("metrics server: %v", err)
			}
		}()
		defer srv.Close()
		log.Infof("serving metrics on %s/metrics", addr)
	}

	backend, err := render.NewBackend(conf.Render.Backend, log, conf.Render.StatsEvery)
	if err != nil {
		return err
	}
	s, err := session.New(log, conf, backend, reg)
	if err != nil {
		_ = backend.Close()
		return err
	}
	defer s.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	interval := conf.TickInterval()
	dt := float32(interval.Seconds())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p := &pilot{in: s.Input()}
	for i := 1; frames <= 0 || i <= frames; i++ {
		if !fast {
			select {
			case <-ctx.Done():
				log.Info("interrupted")
				return nil
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		p.step(i)
		res, err := s.Frame(dt)
		if err != nil {
			return err
		}
		if res.LockRequested {
			s.Input().SetPointerLocked(true)
		}
		for _, shot := range res.Shots {
			if shot.Hit {
				log.Debugf("shot removed block at (%d, %d) from %.2f", shot.Block.X, shot.Block.Z, shot.Distance)
			}
		}
	}

	state := s.State()
	log.WithFields(logrus.Fields{
		"frames":    frames,
		"position":  state.Pos,
		"on_ground": state.OnGround,
		"blocks":    s.World().Len(),
	}).Info("run finished")
	return nil
}
