package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"freekassa/client"
	"freekassa/client/freekassa"
	"freekassa/config"
	"freekassa/server"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	errColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
)

type command struct {
	args  string
	nargs int
	run   func(ctx context.Context, c *freekassa.Client, args []string) (*client.Response, error)
}

var commands = map[string]command{
	"balance": {
		run: func(ctx context.Context, c *freekassa.Client, _ []string) (*client.Response, error) {
			return c.Balance(ctx)
		},
	},
	"wallet-balance": {
		run: func(ctx context.Context, c *freekassa.Client, _ []string) (*client.Response, error) {
			return c.WalletBalance(ctx)
		},
	},
	"providers": {
		run: func(ctx context.Context, c *freekassa.Client, _ []string) (*client.Response, error) {
			return c.Providers(ctx)
		},
	},
	"order-status": {
		args:  "<order_id>",
		nargs: 1,
		run: func(ctx context.Context, c *freekassa.Client, args []string) (*client.Response, error) {
			return c.OrderStatus(ctx, &freekassa.OrderStatusRequest{OrderId: args[0]})
		},
	},
	"payment-status": {
		args:  "<payment_id>",
		nargs: 1,
		run: func(ctx context.Context, c *freekassa.Client, args []string) (*client.Response, error) {
			return c.PaymentStatus(ctx, args[0])
		},
	},
	"orders": {
		args: "[status]",
		run: func(ctx context.Context, c *freekassa.Client, args []string) (*client.Response, error) {
			req := &freekassa.ExportOrdersRequest{DateTo: time.Now()}
			if len(args) > 0 {
				req.Status = args[0]
			}
			return c.ExportOrders(ctx, req)
		},
	},
	"address": {
		args:  "<btc|ltc|eth>",
		nargs: 1,
		run: func(ctx context.Context, c *freekassa.Client, args []string) (*client.Response, error) {
			return c.CryptoAddress(ctx, freekassa.Crypto(args[0]))
		},
	},
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: freekassa [flags] <command> [args]\n\nCommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s %s\n", name, commands[name].args)
	}
	fmt.Fprintf(out, "  link <amount> [description]\n  serve\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("conf", "", "path to config file, environment only when empty")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := config.GetConfig(*configPath)
	if err != nil {
		fail(err)
	}
	slog.SetLogLoggerLevel(conf.SlogLevel())

	c := freekassa.NewClient(conf.ClientConfig(), freekassa.WithTimeout(conf.RequestTimeout))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	name, args := flag.Arg(0), flag.Args()[1:]
	switch name {
	case "serve":
		err = serve(ctx, c, conf.NotifyAddress())
	case "link":
		err = link(c, args)
	default:
		err = runCommand(ctx, c, name, args)
	}
	if err != nil {
		fail(err)
	}
}

func runCommand(ctx context.Context, c *freekassa.Client, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		flag.Usage()
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) < cmd.nargs {
		return fmt.Errorf("usage: %s %s", name, cmd.args)
	}

	resp, err := cmd.run(ctx, c, args)
	if err != nil {
		return err
	}
	labelColor.Printf("%d ", resp.StatusCode)
	fmt.Println(resp.String())
	return nil
}

func link(c *freekassa.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: link <amount> [description]")
	}
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[0], err)
	}
	req := &freekassa.PaymentLinkRequest{
		OrderId: freekassa.NewOrderId(),
		Amount:  amount,
	}
	if len(args) > 1 {
		req.Description = args[1]
	}

	url, err := c.PaymentLink(req)
	if err != nil {
		return err
	}
	labelColor.Print("order ")
	fmt.Println(req.OrderId)
	okColor.Println(url)
	return nil
}

func serve(ctx context.Context, c *freekassa.Client, address string) error {
	s := server.NewServer(c, func(ctx context.Context, n *freekassa.Notification) error {
		okColor.Printf("paid ")
		fmt.Printf("order=%s intid=%s amount=%s\n", n.OrderId, n.IntId, n.Amount)
		return nil
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			slog.Error("[NotifyServer] Shutdown failed", "error", err)
		}
	}()
	return s.Start(address)
}

func fail(err error) {
	errColor.Fprintln(os.Stderr, err)
	os.Exit(1)
}
