package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vladislavdragonenkov/storefront/internal/version"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const (
	userIDHeader      = "x-user-id"
	userRoleHeader    = "x-user-role"
	idempotencyHeader = "idempotency-key"
	roleAdmin         = "admin"
	loadAdminID       = "loadtest-admin"
	defaultProducts   = "tee-classic,hoodie-zip"
)

type loadMode string

const (
	// modeCheckout: наполнить корзину и оформить один заказ.
	modeCheckout loadMode = "checkout"
	// modeCheckoutRace: параллельные оформления одной корзины без ключа идемпотентности.
	modeCheckoutRace loadMode = "checkout-race"
	// modeCheckoutFulfil: оформить заказ и провести его администратором до SHIPPED или отменить.
	modeCheckoutFulfil loadMode = "checkout-fulfil"
)

type config struct {
	addr        string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	cancelRate  int
	duplicates  int
	products    []string
	quantity    int
	userTag     string
	outputPath  string
}

func parseConfig(args []string, output io.Writer) (config, error) {
	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		cfg      config
		mode     string
		products string
	)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 400, "scenarios to run; with -duration acts as an upper bound when set explicitly")
	fs.DurationVar(&cfg.duration, "duration", 0, "run for this long instead of a fixed count")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "scenarios in flight")
	fs.IntVar(&cfg.connections, "connections", 20, "gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.StringVar(&mode, "mode", string(modeCheckout), "checkout | checkout-race | checkout-fulfil")
	fs.IntVar(&cfg.cancelRate, "cancel-rate", 0, "percent of checkout-fulfil orders cancelled instead of shipped")
	fs.IntVar(&cfg.duplicates, "duplicates", 4, "parallel CreateOrder calls per cart in checkout-race mode")
	fs.StringVar(&products, "products", defaultProducts, "comma-separated product ids added to every cart")
	fs.IntVar(&cfg.quantity, "quantity", 1, "quantity per cart line")
	fs.StringVar(&cfg.userTag, "user-tag", "load", "user id prefix")
	fs.StringVar(&cfg.outputPath, "output", "", "write the JSON report to this file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	parsed, err := parseMode(mode)
	if err != nil {
		return config{}, err
	}
	cfg.mode = parsed
	cfg.products = splitList(products)

	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	switch {
	case cfg.duration < 0:
		return errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return errors.New("total must be > 0 when duration is not set")
	case cfg.duration > 0 && cfg.totalSet && cfg.total <= 0:
		return errors.New("total must be > 0 when explicitly set with duration")
	case cfg.concurrency <= 0:
		return errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return errors.New("timeout must be > 0")
	case cfg.cancelRate < 0 || cfg.cancelRate > 100:
		return errors.New("cancel-rate must be between 0 and 100")
	case cfg.duplicates < 2:
		return errors.New("duplicates must be >= 2")
	case len(cfg.products) == 0:
		return errors.New("products are required")
	case cfg.quantity <= 0 || cfg.quantity > 999:
		return errors.New("quantity must be between 1 and 999")
	case strings.TrimSpace(cfg.userTag) == "":
		return errors.New("user-tag is required")
	}
	return nil
}

func parseMode(value string) (loadMode, error) {
	switch m := loadMode(strings.TrimSpace(value)); m {
	case modeCheckout, modeCheckoutRace, modeCheckoutFulfil:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (cfg config) target() string {
	switch {
	case cfg.duration <= 0:
		return fmt.Sprintf("count:%d", cfg.total)
	case cfg.totalSet:
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	default:
		return fmt.Sprintf("duration:%s", cfg.duration)
	}
}

func dial(addr string, n int) ([]storefrontv1.StorefrontServiceClient, func(), error) {
	conns := make([]*grpc.ClientConn, 0, n)
	closeAll := func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}

	clients := make([]storefrontv1.StorefrontServiceClient, 0, n)
	for i := 0; i < n; i++ {
		conn, err := grpc.NewClient(addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithUserAgent(version.UserAgent("loadtest")),
		)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("create grpc client connection: %w", err)
		}
		conns = append(conns, conn)
		clients = append(clients, storefrontv1.NewStorefrontServiceClient(conn))
	}
	return clients, closeAll, nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}

	clients, closeClients, err := dial(cfg.addr, cfg.connections)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeClients()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startedAt := time.Now()
	r := newRunner(cfg, clients, newRecorder(), fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid()))
	r.run(ctx)

	result, err := r.rec.report(startedAt, time.Since(startedAt))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "build report: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.Scenarios.Failed > 0 {
		os.Exit(1)
	}
}
