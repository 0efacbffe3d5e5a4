package main

import (
	"fmt"
	"os"
	"strings"

	"hotel-reservation/config"
	"hotel-reservation/console"
	"hotel-reservation/hotel"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type options struct {
	envFile  string
	store    string
	seedFile string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "hotel",
		Short:        "Interactive hotel room reservation console",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading HOTEL_* variables")
	flags.StringVar(&opts.store, "store", "", "room and reservation store: memory or sqlite (env "+config.EnvStore+")")
	flags.StringVar(&opts.seedFile, "seed", "", "YAML file with the room inventory (env "+config.EnvSeedFile+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")

	root.AddCommand(&cobra.Command{
		Use:   "rooms",
		Short: "Print the room inventory and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listRooms(cmd, opts)
		},
	})
	return root
}

// loadConfig layers flags that were set explicitly over env and .env values.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = opts.store
	}
	if flags.Changed("seed") {
		cfg.SeedFile = opts.seedFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

// openBook builds the store, the logger, and a seeded ReservationBook.
func openBook(cmd *cobra.Command, opts *options) (*hotel.ReservationBook, *zap.Logger, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, nil, err
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := hotel.OpenStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	book := hotel.NewReservationBook(store, logger)

	rooms := hotel.DefaultRooms()
	if cfg.SeedFile != "" {
		if rooms, err = hotel.LoadSeedFile(cfg.SeedFile); err != nil {
			book.Close()
			return nil, nil, fmt.Errorf("load seed file: %w", err)
		}
	}
	if err := book.Seed(rooms); err != nil {
		book.Close()
		return nil, nil, err
	}

	logger.Info("reservation book ready",
		zap.String("store", cfg.Store),
		zap.Int("rooms", len(rooms)))
	return book, logger, nil
}

func runConsole(cmd *cobra.Command, opts *options) error {
	book, logger, err := openBook(cmd, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer book.Close()

	// Piped input gets the bare menu only.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to the Hotel Reservation System!")
		fmt.Println("Choose an option by number. Option 5 exits.")
	}

	return console.New(book, os.Stdin, os.Stdout).Run()
}

func listRooms(cmd *cobra.Command, opts *options) error {
	book, logger, err := openBook(cmd, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer book.Close()

	rooms, err := book.Rooms()
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-12s %10s  %s\n", "Room", "Category", "Price", "Status")
	fmt.Fprintln(out, strings.Repeat("-", 45))
	for _, r := range rooms {
		fmt.Fprintln(out, hotel.PrettyRoom(r))
	}
	return nil
}
