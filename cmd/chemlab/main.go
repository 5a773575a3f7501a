package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chemlab/internal/bootstrap"
	"chemlab/internal/platform/config"
	"chemlab/internal/platform/logging"
	"chemlab/internal/platform/money"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	verbose bool
	asJSON  bool
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "chemlab",
		Short:         "Chemistry Lab: swipe on couples and back their milestones",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if opts.verbose {
				cfg.LogLevel = "debug"
			}
			opts.cfg = cfg
			if cmd.Name() == "tui" {
				opts.logger, err = logging.NewFile(cfg.LogFile, cfg.LogLevel)
			} else {
				opts.logger, err = logging.New(cfg.LogLevel, cfg.Development())
			}
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newCouplesCmd(opts))
	root.AddCommand(newBackingsCmd(opts))
	root.AddCommand(newLeaderboardCmd(opts))
	root.AddCommand(newNetworkCmd(opts))
	return root
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadApp(ctx context.Context, opts *rootOptions) (*bootstrap.App, error) {
	return bootstrap.New(ctx, opts.cfg, opts.logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mock API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			if addr != "" {
				opts.cfg.Addr = addr
			}
			ctx, stop := signalContext()
			defer stop()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunServer(ctx, app)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CHEMLAB_ADDR)")
	return cmd
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	var apiURL, wallet, chainID string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the swipe terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			if apiURL != "" {
				opts.cfg.APIBaseURL = apiURL
			}
			if wallet != "" {
				opts.cfg.Wallet = wallet
			}
			if chainID != "" {
				opts.cfg.ChainID = chainID
			}
			ctx, stop := signalContext()
			defer stop()
			return bootstrap.RunTUI(ctx, opts.cfg, opts.logger)
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", "", "API base URL; empty runs in process")
	cmd.Flags().StringVar(&wallet, "wallet", "", "connected wallet address")
	cmd.Flags().StringVar(&chainID, "chain-id", "", "chain reported by the wallet")
	return cmd
}

func newCouplesCmd(opts *rootOptions) *cobra.Command {
	couples := &cobra.Command{Use: "couples", Short: "Browse couples"}

	couples.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List couples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.CouplesCLI.ListCouples(ctx)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			for _, c := range out.Couples {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d%%\t%s\tmatched %s\n", c.ID, c.Names(), c.ChemistryScore, c.Location, c.MatchedAgo)
			}
			return nil
		},
	})

	couples.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a couple and its milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			c, err := app.CouplesCLI.GetCouple(ctx, args[0])
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), c)
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s (%s)\n%d%% chemistry, %s, matched %s\n%s\n\n", c.Names(), c.ID, c.ChemistryScore, c.ChemistryBand, c.MatchedAgo, c.Backstory)
			for _, p := range []struct{ name, display string }{
				{c.Partner1.Name, c.Partner1.DisplayName},
				{c.Partner2.Name, c.Partner2.DisplayName},
			} {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", p.name, p.display)
			}
			_, _ = fmt.Fprintln(w)
			for _, m := range c.Milestones {
				_, _ = fmt.Fprintf(w, "%d\t%s\tmin %s\t%.2fx\t%s\tbacked %s by %d\n",
					m.ID, m.Title, money.Format(m.MinBackingAmount), float64(m.Multiplier)/100,
					m.TimeRemaining, money.Format(m.TotalBacked), m.TotalBackers)
			}
			return nil
		},
	})
	return couples
}

func newBackingsCmd(opts *rootOptions) *cobra.Command {
	backings := &cobra.Command{Use: "backings", Short: "Milestone backings"}

	addressArg := func(args []string) string {
		if len(args) > 0 {
			return args[0]
		}
		return opts.cfg.Wallet
	}

	backings.AddCommand(&cobra.Command{
		Use:   "list [address]",
		Short: "List backings for a wallet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.BackingCLI.List(ctx, addressArg(args))
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			if out.Total == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no backings")
				return nil
			}
			for _, b := range out.Backings {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tcouple=%s\tmilestone=%d\t%s\t%s\n",
					b.ID, b.CoupleID, b.MilestoneID, money.Format(b.Amount), b.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total %s backed, %s potential\n",
				money.FormatWithUnit(out.TotalBacked), money.FormatWithUnit(out.TotalPotentialWinnings))
			return nil
		},
	})

	var address string
	submit := &cobra.Command{
		Use:   "submit <coupleId> <milestoneId> <amount>",
		Short: "Back a milestone; amount in USDC, e.g. 1.50",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			milestoneID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("milestone id %q: %w", args[1], err)
			}
			amount, err := money.Parse(args[2])
			if err != nil {
				return err
			}
			if strings.TrimSpace(address) == "" {
				address = opts.cfg.Wallet
			}
			ctx, stop := signalContext()
			defer stop()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.BackingCLI.Submit(ctx, address, args[0], milestoneID, amount)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			for _, b := range out.Backings {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "backed %s milestone %d with %s (id %s)\n",
					b.CoupleID, b.MilestoneID, money.FormatWithUnit(b.Amount), b.ID)
			}
			return nil
		},
	}
	submit.Flags().StringVar(&address, "address", "", "wallet address (defaults to CHEMLAB_WALLET)")
	backings.AddCommand(submit)

	backings.AddCommand(&cobra.Command{
		Use:   "claimable [address]",
		Short: "List rewards from milestones that resolved successfully",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			rewards, err := app.BackingCLI.Claimable(ctx, addressArg(args))
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), rewards)
			}
			if len(rewards) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to claim")
				return nil
			}
			for _, r := range rewards {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", r.BackingID, r.CoupleNames, r.MilestoneTitle, money.Format(r.Payout))
			}
			return nil
		},
	})
	return backings
}

func newLeaderboardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show top backers, recent wins and community stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			board, err := app.LeaderboardCLI.Board(ctx)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), board)
			}
			w := cmd.OutOrStdout()
			for i, b := range board.TopBackers {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s backed\t%s won\t%.0f%%\n", i+1, b.Username, money.Format(b.TotalBacked), money.Format(b.TotalWon), b.SuccessRate*100)
			}
			s := board.CommunityStats
			_, _ = fmt.Fprintf(w, "\n%d couples supported, %s backed, %s won, %d active backers\n",
				s.TotalCouplesSupported, money.Format(s.TotalUSDCBacked), money.Format(s.TotalUSDCWon), s.ActiveBackers)
			return nil
		},
	}
}

func newNetworkCmd(opts *rootOptions) *cobra.Command {
	var chainID, name string
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Check the wallet's chain against the expected network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if chainID == "" {
				chainID = opts.cfg.ChainID
			}
			ctx := cmd.Context()
			app, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.NetworkCLI.Status(ctx, chainID, opts.cfg.Wallet, name)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tcorrect=%t\n", out.Label, out.DisplayName, out.IsCorrectNetwork)
			if out.ShouldShowWarning {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Instructions)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chainID, "chain-id", "", "chain id reported by the wallet (overrides CHEMLAB_CHAIN_ID)")
	cmd.Flags().StringVar(&name, "basename", "", "basename to display for the wallet")
	return cmd
}
