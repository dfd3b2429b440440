package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"webshop-client/internal/auth"
	"webshop-client/internal/cart"
	"webshop-client/internal/checkout"
	"webshop-client/internal/config"
	"webshop-client/internal/gateway"
	"webshop-client/internal/logger"
	"webshop-client/internal/order"
	"webshop-client/internal/payment"
	"webshop-client/internal/product"
	"webshop-client/internal/session"
	"webshop-client/internal/storage"
	"webshop-client/internal/web"
)

type app struct {
	cfg      *config.Config
	sessions *session.Store
	carts    *cart.Store
	auth     auth.Service
	products product.Service
	orders   order.Service
	payments payment.Service
	checkout *checkout.Orchestrator
	rec      *payment.Reconciler
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	st, err := storage.NewStore(cfg.StateDir)
	if err != nil {
		log.Fatalf("failed to open state dir: %v", err)
	}

	sessions := session.NewStore(st)
	carts := cart.NewStore(st)

	api := gateway.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions)
	authSvc := auth.NewService(api, sessions)
	api.SetRenewer(auth.Renewer(authSvc))

	products := product.NewService(api)
	orders := order.NewService(api)
	payments := payment.NewService(api)

	a := &app{
		cfg:      cfg,
		sessions: sessions,
		carts:    carts,
		auth:     authSvc,
		products: products,
		orders:   orders,
		payments: payments,
		checkout: checkout.NewOrchestrator(api, sessions, carts, products),
		rec:      payment.NewReconciler(sessions, authSvc, orders, payments, carts),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shop <command> [flags]

commands:
  login      -email -password
  register   -first -last -phone -email -password
  logout
  cart       add|show|update|remove|clear
  checkout   -method CASH|PAYPAL -address "..."
  orders     mine|all|show
  serve      run the payment-result listener`)
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "register":
		return a.cmdRegister(ctx, args)
	case "logout":
		a.auth.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "cart":
		return a.cmdCart(ctx, args)
	case "checkout":
		return a.cmdCheckout(ctx, args)
	case "orders":
		return a.cmdOrders(ctx, args)
	case "serve":
		return web.NewRouter(a.rec).Run(a.cfg.ListenAddr)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	sess, err := a.auth.Login(ctx, auth.LoginInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s %s <%s>\n", sess.FirstName, sess.LastName, sess.Email)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	err := a.auth.Register(ctx, auth.RegisterInput{
		FirstName:      *first,
		LastName:       *last,
		PhoneNumber:    *phone,
		Email:          *email,
		Password:       *password,
		RepeatPassword: *password,
	})
	if err != nil {
		return err
	}
	fmt.Println("registered, you can now log in")
	return nil
}

func (a *app) cmdCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("cart needs a subcommand: add|show|update|remove|clear")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		id := fs.Uint("product", 0, "product id")
		qty := fs.Int("qty", 1, "quantity")
		_ = fs.Parse(rest)

		p, err := a.products.GetProduct(ctx, uint(*id))
		if err != nil {
			return err
		}
		return a.carts.Add(cart.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  *qty,
		})
	case "show":
		current, err := a.carts.Get()
		if err != nil {
			return err
		}
		if current.IsEmpty() {
			fmt.Println("cart is empty")
			return nil
		}
		for _, l := range current.Lines {
			fmt.Printf("%4d x %-30s %10s\n", l.Quantity, l.Name, order.FormatPrice(l.Price*float64(l.Quantity)))
		}
		fmt.Printf("total: %s\n", order.FormatPrice(current.TotalAmount))
		return nil
	case "update":
		fs := flag.NewFlagSet("cart update", flag.ExitOnError)
		id := fs.Uint("product", 0, "product id")
		qty := fs.Int("qty", 1, "quantity")
		_ = fs.Parse(rest)
		return a.carts.UpdateQuantity(uint(*id), *qty)
	case "remove":
		fs := flag.NewFlagSet("cart remove", flag.ExitOnError)
		id := fs.Uint("product", 0, "product id")
		_ = fs.Parse(rest)
		return a.carts.Remove(uint(*id))
	case "clear":
		return a.carts.Clear()
	default:
		return fmt.Errorf("unknown cart subcommand %q", sub)
	}
}

func (a *app) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	method := fs.String("method", string(order.MethodCash), "payment method: CASH or PAYPAL")
	address := fs.String("address", "", "shipping address")
	_ = fs.Parse(args)

	outcome, err := a.checkout.Checkout(ctx, order.PaymentMethod(*method), *address)
	if err != nil {
		if errors.Is(err, checkout.ErrNotAuthenticated) {
			return fmt.Errorf("%w: run `shop login` and retry checkout", err)
		}
		return err
	}

	if outcome.RedirectURL != "" {
		fmt.Println("open the payment page to approve the order:")
		fmt.Println(" ", outcome.RedirectURL)
		fmt.Println("the result listener (`shop serve`) completes the order on return")
		return nil
	}

	fmt.Printf("order %d submitted, see /payment/success?orderId=%d\n", outcome.OrderID, outcome.OrderID)
	return nil
}

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	sub := "mine"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "mine", "all":
		var (
			list []order.Order
			err  error
		)
		if sub == "all" {
			list, err = a.orders.GetAllOrders(ctx)
		} else {
			list, err = a.orders.GetMyOrders(ctx)
		}
		if err != nil {
			return err
		}
		for _, o := range list {
			status := o.Status
			if status == "" {
				status = "processing"
			}
			fmt.Printf("#%-6d %s %-16s %s\n", o.ID, order.FormatDate(o.OrderDate), status, order.FormatPrice(o.TotalPrice))
		}
		return nil
	case "show":
		fs := flag.NewFlagSet("orders show", flag.ExitOnError)
		id := fs.Uint("id", 0, "order id")
		_ = fs.Parse(args[1:])

		o, err := a.orders.GetOrder(ctx, uint(*id))
		if err != nil {
			return err
		}
		fmt.Printf("order #%d for %s %s <%s>\n", o.ID, o.UserFirstName, o.UserLastName, o.UserEmail)
		fmt.Printf("shipping: %s, method: %s, date: %s\n", o.ShippingAddress, o.PaymentMethod, order.FormatDate(o.OrderDate))
		for _, item := range o.Items {
			fmt.Printf("%4d x %-30s %10s\n", item.Quantity, item.ProductName, order.FormatPrice(item.Price*float64(item.Quantity)))
		}
		fmt.Printf("total: %s\n", order.FormatPrice(o.TotalPrice))
		return nil
	default:
		return fmt.Errorf("unknown orders subcommand %q", sub)
	}
}
