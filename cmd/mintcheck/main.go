// Command mintcheck reports whether a mint can be traded and the transfer fee
// it withholds on a given amount.
//
//	mintcheck -mint 2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo -amount 1000000
//	solana account <mint> --output json > mint.json && mintcheck -file mint.json -epoch 700 -amount 5000
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/krazyTry/tokenguard/checker"
	solanago "github.com/krazyTry/tokenguard/solana"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		mintFlag  = flag.String("mint", "", "mint address to load over RPC")
		fileFlag  = flag.String("file", "", "read the mint from a `solana account --output json` dump instead of RPC")
		amount    = flag.Uint64("amount", 0, "raw token amount to quote")
		epochFlag = flag.String("epoch", "", "fee epoch, defaults to the current cluster epoch")
		inverse   = flag.Bool("inverse", false, "treat -amount as the amount to receive")
		minSlot   = flag.Uint64("min-slot", 0, "minimum context slot for RPC reads")
		envFile   = flag.String("env", ".env", "dotenv file to load")
	)
	flag.Parse()

	log := logrus.New()
	cfg, err := loadConfig(*envFile)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []checker.Option{
		checker.WithLogger(log),
		checker.WithTimeout(cfg.Timeout),
		checker.WithReadOptions(solanago.ReadOptions{Commitment: cfg.Commitment, MinContextSlot: *minSlot}),
	}
	if *epochFlag != "" {
		epoch, err := strconv.ParseUint(*epochFlag, 10, 64)
		if err != nil {
			log.WithError(err).Fatal("parse -epoch")
		}
		opts = append(opts, checker.WithEpoch(epoch))
	}
	c := checker.NewChecker(rpc.New(cfg.RPCURL), opts...)

	var q *checker.Quote
	switch {
	case *fileFlag != "":
		raw, err := os.ReadFile(*fileFlag)
		if err != nil {
			log.WithError(err).Fatal("read account dump")
		}
		acc, err := parseAccountDump(raw)
		if err != nil {
			log.WithError(err).Fatal("parse account dump")
		}
		epoch, err := c.Epoch(ctx)
		if err != nil {
			log.WithError(err).Fatal("resolve epoch")
		}
		q, err = checker.NewQuote(acc, *amount, epoch, *inverse)
		if err != nil {
			log.WithError(err).Fatal("quote")
		}
	case *mintFlag != "":
		mint, err := solana.PublicKeyFromBase58(*mintFlag)
		if err != nil {
			log.WithError(err).Fatal("parse -mint")
		}
		q, err = c.Quote(ctx, mint, *amount, *inverse)
		if errors.Is(err, rpc.ErrNotFound) {
			log.WithField("mint", mint.String()).Fatal("mint account not found")
		}
		if err != nil {
			log.WithError(err).Fatal("quote")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	log.WithFields(q.Fields()).Info("mint checked")
	if !q.Supported {
		os.Exit(1)
	}
}
