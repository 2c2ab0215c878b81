package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hostelmanager/hostel-access-service/internal/adapters/fallback"
	"github.com/hostelmanager/hostel-access-service/internal/adapters/rest"
	"github.com/hostelmanager/hostel-access-service/internal/adapters/storage"
	"github.com/hostelmanager/hostel-access-service/internal/config"
	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
	"github.com/hostelmanager/hostel-access-service/internal/core/services"
	"github.com/hostelmanager/hostel-access-service/internal/metrics"
)

func main() {
	cmd := flag.String("cmd", "whoami", "Command: login|register|logout|whoami|room|rooms|complaints|complain|payments|mess|students|renewals")
	email := flag.String("email", "", "Email (login/register)")
	password := flag.String("password", "", "Password (login/register)")
	name := flag.String("name", "", "Display name (register)")
	phone := flag.String("phone", "", "Phone (register)")
	role := flag.String("role", "student", "Role: student|admin (register)")
	title := flag.String("title", "", "Complaint title (complain)")
	description := flag.String("description", "", "Complaint description (complain)")
	category := flag.String("category", "other", "Complaint category (complain)")
	flag.Parse()

	cfg := config.Load()
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	store, err := buildStore(cfg)
	if err != nil {
		logger.Fatalf("session store: %v", err)
	}

	api := rest.Shared(cfg)
	fb := fallback.NewProvider()
	cb := config.NewCircuitBreaker("HostelAPI")
	m := metrics.New(prometheus.DefaultRegisterer)

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddress, mux); err != nil {
				logger.Warnf("metrics listener: %v", err)
			}
		}()
	}

	auth := services.NewAuthService(store, api, fb, cb, m, logger)
	hostel := services.NewHostelService(store, api, fb, cb, m, logger)
	admin := services.NewAdminService(store, api, fb, cb, m, logger)

	ctx := context.Background()

	switch *cmd {
	case "login":
		user, source, err := auth.Login(ctx, *email, *password)
		exitOn(err)
		printSession(user, source)
		fmt.Printf("Routing to %s dashboard\n", user.Role.Dashboard())

	case "register":
		user, source, err := auth.Register(ctx, ports.RegisterInput{
			Email:    *email,
			Password: *password,
			Name:     *name,
			Phone:    *phone,
			Role:     domain.Role(*role),
		})
		exitOn(err)
		printSession(user, source)
		fmt.Printf("Routing to %s dashboard\n", user.Role.Dashboard())

	case "logout":
		exitOn(auth.Logout(ctx))
		fmt.Println("Logged out")

	case "whoami":
		user, err := auth.CurrentUser(ctx)
		exitOn(err)
		if user == nil {
			fmt.Println("Not logged in")
			return
		}
		token, err := store.Token(ctx)
		exitOn(err)
		printJSON(user)
		if services.TokenExpired(token) {
			fmt.Println("Note: stored token has expired")
		}

	case "room":
		room, source, err := hostel.MyRoom(ctx)
		exitOn(err)
		printResult(room, source)

	case "rooms":
		rooms, source, err := hostel.Rooms(ctx)
		exitOn(err)
		printResult(rooms, source)

	case "complaints":
		complaints, source, err := hostel.Complaints(ctx)
		exitOn(err)
		printResult(complaints, source)

	case "complain":
		res, err := hostel.CreateComplaint(ctx, ports.ComplaintInput{
			Title:       *title,
			Description: *description,
			Category:    domain.ComplaintCategory(*category),
		})
		exitOn(err)
		fmt.Println(res.Message)

	case "payments":
		payments, source, err := hostel.Payments(ctx)
		exitOn(err)
		printResult(payments, source)

	case "mess":
		menu, source, err := hostel.MessMenu(ctx)
		exitOn(err)
		printResult(menu, source)

	case "students":
		students, source, err := admin.Students(ctx)
		exitOn(err)
		printResult(students, source)

	case "renewals":
		forms, source, err := hostel.RenewalForms(ctx)
		exitOn(err)
		printResult(forms, source)

	default:
		fmt.Println("Unknown command:", *cmd)
		os.Exit(1)
	}
}

func buildStore(cfg *config.Config) (ports.SessionStore, error) {
	switch cfg.SessionBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return storage.NewRedisStore(rdb), nil
	case "file", "":
		return storage.NewFileStore(cfg.SessionPath), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func printSession(user *domain.User, source domain.Source) {
	printJSON(user)
	if source == domain.SourceFallback {
		fmt.Println("Demo mode activated (backend unreachable)")
	}
}

func printResult(v any, source domain.Source) {
	printJSON(v)
	if source == domain.SourceFallback {
		fmt.Println("(demo data — backend unreachable)")
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}
	fmt.Println(string(out))
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
