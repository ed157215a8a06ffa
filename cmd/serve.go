package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"remote-controller/core/admin"
	"remote-controller/core/audit"
	"remote-controller/core/config"
	"remote-controller/core/database"
	"remote-controller/core/loader"
	"remote-controller/core/router"
	"remote-controller/core/server"
	"remote-controller/core/wol"
	"remote-controller/feature/ping"
	"remote-controller/feature/wake"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func runServer(ctx context.Context, path string) error {
	// 1. Load Configuration and Logger
	cfg, logg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Audit trail (Optional database)
	recorder := newRecorder(ctx, cfg, logg)

	// 3. Features
	r := router.New()
	mgr := loader.NewManager(logg)
	mgr.Register(ping.NewFeature())
	mgr.Register(wake.NewFeature(wol.NewUDPSender(cfg.Wol), cfg.Wol.PhysicalAddress, recorder, logg))
	if err := mgr.LoadAll(r); err != nil {
		return err
	}

	// 4. Bind before anything reports ready
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", cfg.Server.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.ListenAddress, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	var status *admin.Server
	if cfg.Admin.Enabled {
		status = admin.New(cfg.Admin, recorder, logg)
		g.Go(func() error {
			return status.Run(gctx)
		})
	}

	srv := server.New(cfg.Server, r, logg)
	g.Go(func() error {
		return srv.Serve(gctx, ln)
	})
	if status != nil {
		status.SetReady(true)
	}

	logg.Info("Remote controller started",
		zap.String("listen_address", cfg.Server.ListenAddress),
		zap.String("physical_address", cfg.Wol.PhysicalAddress),
		zap.String("config", path),
	)

	err = g.Wait()
	logg.Info("Shutting down...")
	return err
}

// newRecorder picks the gorm audit store when a database is configured and
// reachable, falling back to the in-memory ring otherwise.
func newRecorder(ctx context.Context, cfg *config.Config, logg *zap.Logger) audit.Recorder {
	mem := audit.NewMemoryRecorder(cfg.Audit.MemorySize)
	if !cfg.Database.Enabled() {
		return mem
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return mem
	}

	rec := audit.NewGormRecorder(db)
	if err := rec.Migrate(ctx); err != nil {
		logg.Warn("Audit table migration failed", zap.Error(err))
		return mem
	}

	logg.Info("Connected to audit database", zap.String("driver", cfg.Database.Driver))
	return rec
}
