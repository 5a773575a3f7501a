package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	backinginadapter "chemlab/internal/modules/backing/adapter/in"
	backingoutadapter "chemlab/internal/modules/backing/adapter/out"
	backingin "chemlab/internal/modules/backing/port/in"
	backingservice "chemlab/internal/modules/backing/service"
	backingusecase "chemlab/internal/modules/backing/usecase"
	couplesinadapter "chemlab/internal/modules/couples/adapter/in"
	couplesoutadapter "chemlab/internal/modules/couples/adapter/out"
	couplesdto "chemlab/internal/modules/couples/dto"
	couplesservice "chemlab/internal/modules/couples/service"
	couplesusecase "chemlab/internal/modules/couples/usecase"
	framesinadapter "chemlab/internal/modules/frames/adapter/in"
	framesusecase "chemlab/internal/modules/frames/usecase"
	leaderboardinadapter "chemlab/internal/modules/leaderboard/adapter/in"
	leaderboardoutadapter "chemlab/internal/modules/leaderboard/adapter/out"
	leaderboarddto "chemlab/internal/modules/leaderboard/dto"
	leaderboardservice "chemlab/internal/modules/leaderboard/service"
	leaderboardusecase "chemlab/internal/modules/leaderboard/usecase"
	networkinadapter "chemlab/internal/modules/network/adapter/in"
	networkin "chemlab/internal/modules/network/port/in"
	networkservice "chemlab/internal/modules/network/service"
	networkusecase "chemlab/internal/modules/network/usecase"
	swipedto "chemlab/internal/modules/swipe/dto"
	swipeusecase "chemlab/internal/modules/swipe/usecase"
	"chemlab/internal/platform/clock"
	"chemlab/internal/platform/config"
	"chemlab/internal/platform/httpx"
	"chemlab/internal/platform/id"
	"chemlab/internal/platform/tx"
	uiapp "chemlab/internal/ui/app"
)

// App holds the in-process modules.
type App struct {
	CouplesCLI     couplesinadapter.CLIHandler
	BackingCLI     backinginadapter.CLIHandler
	LeaderboardCLI leaderboardinadapter.CLIHandler
	NetworkCLI     networkinadapter.CLIHandler

	cfg    config.Config
	logger *zap.Logger
	db     *sql.DB
	routes []httpx.Route
	ports  uiPorts
}

// uiPorts are the use cases the terminal client drives.
type uiPorts struct {
	couples     couplesLister
	backing     backingin.Usecase
	leaderboard boardReader
	network     networkin.Usecase
}

type couplesLister interface {
	ListCouples(ctx context.Context) (couplesdto.ListOutput, error)
}

type boardReader interface {
	Board(ctx context.Context) (leaderboarddto.BoardOutput, error)
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	couplesUC := couplesusecase.NewInteractor(
		couplesservice.NewCatalogService(couplesoutadapter.NewEmbeddedCoupleSource(clk)),
		clk,
	)

	db, err := backingoutadapter.OpenSQLite(cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open backing ledger: %w", err)
	}
	ledger, err := backingoutadapter.NewSQLiteLedger(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("new backing ledger: %w", err)
	}
	seeds, err := backingoutadapter.SeedBackings(clk)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load seed backings: %w", err)
	}
	if err := ledger.Seed(ctx, seeds); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed backing ledger: %w", err)
	}
	backingUC := backingusecase.NewInteractor(backingservice.NewBackingService(
		backingoutadapter.NewCouplesCatalogAdapter(couplesUC),
		ledger,
		backingoutadapter.NewSimulatedTransferer(cfg.TransferDelay, logger.Named("transfer")),
		backingoutadapter.NewCouplesTallyAdapter(couplesUC),
		tx.NewSQLManager(db),
		clk,
		ids,
		logger.Named("backing"),
	))

	leaderboardUC := leaderboardusecase.NewInteractor(
		leaderboardservice.NewBoardService(leaderboardoutadapter.NewEmbeddedBoardSource(clk)),
	)
	networkUC := networkusecase.NewInteractor(networkservice.NewNetworkService(cfg.Development()))
	framesUC := framesusecase.NewInteractor(cfg.AppURL)

	return &App{
		CouplesCLI:     couplesinadapter.NewCLIHandler(couplesUC),
		BackingCLI:     backinginadapter.NewCLIHandler(backingUC),
		LeaderboardCLI: leaderboardinadapter.NewCLIHandler(leaderboardUC),
		NetworkCLI:     networkinadapter.NewCLIHandler(networkUC),
		cfg:            cfg,
		logger:         logger,
		db:             db,
		routes: []httpx.Route{
			couplesinadapter.NewHTTPHandler(couplesUC, logger.Named("couples")),
			backinginadapter.NewHTTPHandler(backingUC, logger.Named("backings")),
			leaderboardinadapter.NewHTTPHandler(leaderboardUC, logger.Named("leaderboard")),
			networkinadapter.NewHTTPHandler(networkUC, logger.Named("network")),
			framesinadapter.NewHTTPHandler(framesUC, logger.Named("frames")),
		},
		ports: uiPorts{
			couples:     couplesUC,
			backing:     backingUC,
			leaderboard: leaderboardUC,
			network:     networkUC,
		},
	}, nil
}

// Close releases the backing ledger.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Handler mounts every module's API routes.
func (a *App) Handler() http.Handler {
	return httpx.NewMux(a.routes...)
}

// RunServer serves the API on cfg.Addr until ctx is cancelled.
func RunServer(ctx context.Context, app *App) error {
	ln, err := net.Listen("tcp", app.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.cfg.Addr, err)
	}
	return Serve(ctx, app, ln)
}

// Serve runs the API on ln and logs why it stopped.
func Serve(ctx context.Context, app *App, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpx.Serve(gctx, ln, app.Handler(), app.logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		if cause := context.Cause(gctx); cause != nil && !errors.Is(cause, context.Canceled) {
			app.logger.Warn("api stopping", zap.Error(cause))
			return nil
		}
		app.logger.Info("api stopping")
		return nil
	})
	return g.Wait()
}

// RunTUI starts the terminal client. With an API URL configured it talks to
// that server; otherwise it runs the modules in process.
func RunTUI(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var ports uiPorts
	if cfg.Remote() {
		ports = remotePorts(cfg, logger)
	} else {
		app, err := New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()
		ports = app.ports
	}

	deck := swipeusecase.NewDeck(clock.SystemClock{}, swipedto.Viewport{Width: 640, Height: 384})
	model := uiapp.NewModel(
		cfg.Wallet,
		cfg.ChainID,
		ports.couples,
		ports.backing,
		ports.leaderboard,
		ports.network,
		deck,
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// remotePorts reaches couples, backings and the leaderboard over HTTP. Stake
// transfers are still simulated on the client; the server tallies milestones
// when it records the backing.
func remotePorts(cfg config.Config, logger *zap.Logger) uiPorts {
	clk := clock.SystemClock{}
	client := httpx.NewClient(cfg.APIBaseURL, nil)
	couples := couplesoutadapter.NewAPIClient(client)
	backing := backingusecase.NewInteractor(backingservice.NewBackingService(
		backingoutadapter.NewCouplesCatalogAdapter(couples),
		backingoutadapter.NewAPILedger(client),
		backingoutadapter.NewSimulatedTransferer(cfg.TransferDelay, logger.Named("transfer")),
		nil,
		tx.NoopManager{},
		clk,
		id.UUID{},
		logger.Named("backing"),
	))
	return uiPorts{
		couples:     couples,
		backing:     backing,
		leaderboard: leaderboardoutadapter.NewAPIClient(client),
		network:     networkusecase.NewInteractor(networkservice.NewNetworkService(cfg.Development())),
	}
}
