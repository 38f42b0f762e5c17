package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/picklive/money"
	"github.com/picklive/money/field"
	"github.com/picklive/money/internal/config"
	"github.com/picklive/money/internal/logger"
	"github.com/picklive/money/textfmt"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Environment configuration.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		return failure
	}

	// Command line parameter initialization.
	var (
		flagCurrency string
		flagUnits    bool
		flagHTML     bool
	)

	pflag.StringVarP(&flagCurrency, "currency", "c", cfg.DefaultCurrency, "currency code of the amounts")
	pflag.BoolVarP(&flagUnits, "units", "u", false, "read amounts as minimal units instead of major units")
	pflag.BoolVar(&flagHTML, "html", false, "use HTML currency symbols")

	pflag.Parse()

	// Logger initialization.
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse log level: %v\n", err)
		return failure
	}
	var log *zap.Logger
	if cfg.Env == "development" {
		log, err = logger.NewDevelopment("moneyfmt")
	} else {
		log, err = logger.NewProduction("moneyfmt", level)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize logger: %v\n", err)
		return failure
	}
	defer func() { _ = log.Sync() }()
	undo := zap.ReplaceGlobals(log)
	defer undo()

	curr, err := money.ParseCurr(flagCurrency)
	if err != nil {
		log.Error("invalid currency", zap.String("currency", flagCurrency), zap.Error(err))
		return failure
	}

	var opts []money.DisplayOption
	if cfg.Subunits {
		opts = append(opts, money.WithSubunits())
	}
	disp := money.NewDisplay(textfmt.Default(), opts...)
	mapper := field.New(field.Config{DefaultCurrency: curr})

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tAMOUNT\tLONG\tSHORT\tUNITS")
	status := success
	for _, arg := range pflag.Args() {
		a, err := parse(mapper, curr, arg, flagUnits)
		if err != nil {
			log.Error("invalid amount", zap.String("input", arg), zap.Error(err))
			status = failure
			continue
		}
		long := disp.Long(a)
		if flagHTML {
			long = disp.HTML(a)
		}
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\t%d\n", arg, a, long, disp.Short(a), a)
	}
	err = w.Flush()
	if err != nil {
		log.Error("could not write output", zap.Error(err))
		return failure
	}

	return status
}

// parse reads an argument as minimal units of curr or as major units through
// the field mapper, so that the command line behaves like a stored field.
func parse(mapper *field.Mapper, curr money.Currency, arg string, units bool) (money.Amount, error) {
	if units {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return money.Amount{}, fmt.Errorf("parsing minimal units: %w", err)
		}
		return money.NewAmount(curr, n), nil
	}
	col, err := mapper.Encode(arg)
	if err != nil {
		return money.Amount{}, err
	}
	a, _, err := mapper.Decode(col)
	return a, err
}
