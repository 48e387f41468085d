package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/backoff"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/refunder"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/query"
	auction_repository "github.com/x-xyz/goauction/stores/auction/repository"
	auction_usecase "github.com/x-xyz/goauction/stores/auction/usecase"
	bank_repository "github.com/x-xyz/goauction/stores/bank/repository"
	bank_usecase "github.com/x-xyz/goauction/stores/bank/usecase"
	event_repository "github.com/x-xyz/goauction/stores/event/repository"
	event_usecase "github.com/x-xyz/goauction/stores/event/usecase"
	nft_repository "github.com/x-xyz/goauction/stores/nft/repository"
	nft_usecase "github.com/x-xyz/goauction/stores/nft/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if lvl := viper.GetString("log.level"); lvl != "" {
		if err := log.SetLevel(lvl); err != nil {
			log.Log().WithField("err", err).Warn("log.SetLevel failed")
		}
	}
}

func main() {
	defer log.Sync()

	// start server to pass cloud run health check
	startEchoServer()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	batch := viper.GetInt("refunder.batch")
	workers := viper.GetInt("refunder.workers")
	interval := viper.GetDuration("refunder.interval")
	backoffStartD := viper.GetDuration("refunder.backoffStartDuration")
	backoffLimitD := viper.GetDuration("refunder.backoffLimitDuration")

	ctx.WithFields(log.Fields{
		"refunder.batch":                batch,
		"refunder.workers":              workers,
		"refunder.interval":             interval,
		"refunder.backoffStartDuration": backoffStartD,
		"refunder.backoffLimitDuration": backoffLimitD,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	// pushing returns only touches the escrow and the ledgers, so the
	// engine runs without oracles or asset verification here
	eventUC := event_usecase.New(event_repository.New(q))
	bankLedger := bank_usecase.NewLedger(bank_repository.NewBalanceRepo(q), bank_repository.NewAccountRepo(q))
	nftLedger := nft_usecase.NewLedger(nft_repository.NewHoldingRepo(q), nft_repository.NewOperatorRepo(q))
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Tx:                q,
		EngineRepo:        auction_repository.NewEngineRepo(q),
		AuctionRepo:       auction_repository.New(q),
		BidRepo:           auction_repository.NewBidRepo(q),
		PendingReturnRepo: auction_repository.NewPendingReturnRepo(q),
		NftLedger:         nftLedger,
		BankLedger:        bankLedger,
		Emitter:           eventUC,
	})

	r := refunder.New(&refunder.RefunderCfg{
		Auction:   auctionUC,
		BatchSize: batch,
		Workers:   workers,
		Interval:  interval,
		Backoff:   backoff.NewExponential(backoffStartD, backoffLimitD),
	})
	r.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	ctx.WithField("signal", sig).Info("received signal")
	cancel()
	r.Wait()
	ctx.Info("refunder stopped")
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
