package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/config"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/repository"
	"github.com/fjod/go_cart/storefront/internal/seed"
	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/fjod/go_cart/storefront/internal/ui"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is everything one run of the storefront works with.
type session struct {
	cart    *service.CartService
	catalog *repository.MemoryRepository
	logger  *zap.Logger
}

type app struct {
	cfg         *config.Config
	cfgErr      error
	shippingFee string
	logger      *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "storefront",
		Short: "Fashion Store - terminal storefront prototype",
		Long: `Fashion Store shows a login screen, a product catalog and a shopping cart
in the terminal. Everything lives in memory for the length of the session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.cfgErr != nil {
				return a.cfgErr
			}
			if a.shippingFee != "" {
				if err := a.cfg.SetShippingFee(a.shippingFee); err != nil {
					return err
				}
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger.With(zap.String("session_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s.logger.Info("storefront started", zap.Int("products", len(s.catalog.GetAllProducts())))
			model := ui.NewModel(s.cart, s.catalog, s.logger)
			if err := ui.Run(ctx, model); err != nil {
				s.logger.Error("ui stopped", zap.Error(err))
				return err
			}
			s.logger.Info("storefront stopped")
			return nil
		},
	}

	cfg, err := config.Load()
	if err != nil {
		// flags still need somewhere to bind; the error surfaces before any command runs
		a.cfgErr = err
		cfg = &config.Config{LogLevel: "info"}
	}
	a.cfg = cfg

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.SeedPath, "seed", a.cfg.SeedPath, "YAML file with catalog and cart seed data")
	flags.StringVar(&a.shippingFee, "shipping-fee", "", "flat shipping fee in đồng (overrides the seed)")
	flags.StringVar(&a.cfg.LogFile, "log-file", a.cfg.LogFile, "file for JSON logs, empty to disable")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error")

	root.AddCommand(a.catalogCmd(), a.cartCmd())
	return root
}

func (a *app) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [product-id]",
		Short: "Print the product grid, or a single product card",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid product id %q", args[0])
				}
				p, err := s.catalog.GetProduct(id)
				if err != nil {
					return fmt.Errorf("product %d: %w", id, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderProductCard(ui.PlainStyles(), p, false, 40))
				return nil
			}
			view := ui.HomeView{
				Products:   s.catalog.GetAllProducts(),
				Categories: s.catalog.Categories(),
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderHome(ui.PlainStyles(), view, s.cart.BadgeCount(), 80))
			return nil
		},
	}
}

func (a *app) cartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Print the seeded cart and its totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			view := ui.CartView{
				Items:    s.cart.Items(),
				Summary:  s.cart.Summary(),
				Selected: -1,
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Render(domain.ScreenCart, ui.PlainStyles(), ui.View{
				Width: 72,
				Badge: s.cart.BadgeCount(),
				Cart:  view,
			}))
			return nil
		},
	}
}

func (a *app) newSession() (*session, error) {
	data, err := loadSeed(a.cfg.SeedPath)
	if err != nil {
		return nil, err
	}

	shipping := decimal.NewFromInt(config.DefaultShippingFee)
	if data.ShippingFee != nil {
		shipping = *data.ShippingFee
	}
	if a.cfg.ShippingFee != nil {
		shipping = *a.cfg.ShippingFee
	}

	catalog, err := repository.NewMemoryRepository(data.Products, data.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	agg, err := cart.New(shipping, data.Cart...)
	if err != nil {
		return nil, fmt.Errorf("failed to build cart: %w", err)
	}

	logger := a.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("session ready",
		zap.Int("products", len(data.Products)),
		zap.Int("cart_lines", agg.Len()),
		zap.Stringer("shipping_fee", agg.ShippingFee()))
	return &session{
		cart:    service.NewCartService(agg, logger),
		catalog: catalog,
		logger:  logger,
	}, nil
}

func loadSeed(path string) (*seed.Data, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}

// newLogger writes JSON logs to the configured file; the terminal belongs to
// the UI.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	return zcfg.Build()
}
