package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/database/redisclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	bValidator "github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/pricefeed"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/cache/provider"
	"github.com/x-xyz/goauction/service/cache/provider/compound"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/goauction/service/cache/provider/redis"
	"github.com/x-xyz/goauction/service/chain"
	"github.com/x-xyz/goauction/service/chain/contract"
	chainlink_service "github.com/x-xyz/goauction/service/chainlink"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
	auction_delivery "github.com/x-xyz/goauction/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/goauction/stores/auction/repository"
	auction_usecase "github.com/x-xyz/goauction/stores/auction/usecase"
	auth_delivery "github.com/x-xyz/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/goauction/stores/auth/usecase"
	bank_delivery "github.com/x-xyz/goauction/stores/bank/delivery/http"
	bank_repository "github.com/x-xyz/goauction/stores/bank/repository"
	bank_usecase "github.com/x-xyz/goauction/stores/bank/usecase"
	event_delivery "github.com/x-xyz/goauction/stores/event/delivery/http"
	event_repository "github.com/x-xyz/goauction/stores/event/repository"
	event_usecase "github.com/x-xyz/goauction/stores/event/usecase"
	factory_delivery "github.com/x-xyz/goauction/stores/factory/delivery/http"
	factory_repository "github.com/x-xyz/goauction/stores/factory/repository"
	factory_usecase "github.com/x-xyz/goauction/stores/factory/usecase"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
	nft_delivery "github.com/x-xyz/goauction/stores/nft/delivery/http"
	nft_repository "github.com/x-xyz/goauction/stores/nft/repository"
	nft_usecase "github.com/x-xyz/goauction/stores/nft/usecase"
	pricefeed_delivery "github.com/x-xyz/goauction/stores/pricefeed/delivery/http"
	pricefeed_repository "github.com/x-xyz/goauction/stores/pricefeed/repository"
	pricefeed_usecase "github.com/x-xyz/goauction/stores/pricefeed/usecase"

	_ "github.com/x-xyz/goauction/app/api/docs"
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
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Auction House API
//	@version		1.0
//	@description	API Document for the NFT auction house.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(
		viper.GetString("mongo.uri"),
		viper.GetString("mongo.authDBName"),
		viper.GetString("mongo.dbName"),
		viper.GetBool("mongo.enableSSL"),
		true,
		2,
	)
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
	mustEnsureIndexes(context, q)

	// init Redis service
	context.Info("init redis")
	redisName := viper.GetString("redis.name")
	redisPool := redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          true,
	})
	redisService := redis.New(redisName, metrics.New(redisName), &redis.Pools{
		Src: redisPool,
	})

	// process memory in front of redis, shared by chainlink reads and http responses
	cacheProvider := compound.NewCompound([]provider.Provider{
		primitive.NewPrimitive("api", viper.GetInt("cache.sizeMB")),
		redisProvider.NewRedis(redisService),
	})
	httpCache := mmiddleware.NewHttpCache(cacheProvider)

	// init chain service
	chainId := viper.GetInt32("network.chainId")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        map[int32]string{chainId: viper.GetString("network.rpcUrl")},
		ArchiveRpcUrls: map[int32]string{chainId: viper.GetString("network.archiveRpcUrl")},
		MaxInflight:    viper.GetInt("network.maxInflight"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	chainlinkService := chainlink_service.New(chainService, chainlink_service.Config{
		ChainId:  chainId,
		RoundTtl: viper.GetDuration("oracle.roundTtl"),
		Cache:    cacheProvider,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisService)
	eventRepo := event_repository.New(q)
	oracleRepo := pricefeed_repository.NewOracleRepo(q)
	feedRepo := pricefeed_repository.NewFeedRepo(q)
	balanceRepo := bank_repository.NewBalanceRepo(q)
	bankAccountRepo := bank_repository.NewAccountRepo(q)
	holdingRepo := nft_repository.NewHoldingRepo(q)
	operatorRepo := nft_repository.NewOperatorRepo(q)
	engineRepo := auction_repository.NewEngineRepo(q)
	auctionRepo := auction_repository.New(q)
	bidRepo := auction_repository.NewBidRepo(q)
	pendingReturnRepo := auction_repository.NewPendingReturnRepo(q)
	factoryConfigRepo := factory_repository.NewConfigRepo(q)
	listingRepo := factory_repository.NewListingRepo(q)
	registryRepo := factory_repository.NewRegistryRepo(q)
	locker := factory_repository.NewLocker(redisService)

	hc := hc_usecase.New(hcRepo)
	eventUC := event_usecase.New(eventRepo)
	oracle := pricefeed_usecase.New(&pricefeed_usecase.PriceFeedUseCaseCfg{
		Address:    domain.Address(viper.GetString("oracle.address")),
		Tx:         q,
		OracleRepo: oracleRepo,
		FeedRepo:   feedRepo,
		Source:     chainlinkService,
		Emitter:    eventUC,
	})
	bankLedger := bank_usecase.NewLedger(balanceRepo, bankAccountRepo)
	bankUC := bank_usecase.New(q, bankLedger)
	nftLedger := nft_usecase.NewLedger(holdingRepo, operatorRepo)
	nftUC := nft_usecase.New(q, nftLedger, eventUC)

	var verifier auction.AssetVerifier
	if viper.GetBool("network.verifyAssets") {
		verifier = contract.NewErc721(chainService, chainId)
	}
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Tx:                q,
		EngineRepo:        engineRepo,
		AuctionRepo:       auctionRepo,
		BidRepo:           bidRepo,
		PendingReturnRepo: pendingReturnRepo,
		NftLedger:         nftLedger,
		BankLedger:        bankLedger,
		Emitter:           eventUC,
		Oracles:           []pricefeed.UseCase{oracle},
		AssetVerifier:     verifier,
	})
	factoryUC := factory_usecase.New(&factory_usecase.FactoryUseCaseCfg{
		Address:      domain.Address(viper.GetString("factory.address")),
		Tx:           q,
		ConfigRepo:   factoryConfigRepo,
		ListingRepo:  listingRepo,
		RegistryRepo: registryRepo,
		Locker:       locker,
		Auction:      auctionUC,
		BankLedger:   bankLedger,
		Emitter:      eventUC,
		LockTtl:      viper.GetDuration("factory.lockTtl"),
	})

	var erc1271 contract.Erc1271Contract
	if viper.GetBool("auth.contractWallets") {
		erc1271 = contract.NewErc1271(chainService, chainId)
	}
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:    viper.GetString("auth.jwtSecret"),
		SignatureMsg: viper.GetString("auth.signatureMsg"),
		TokenTtl:     viper.GetDuration("auth.tokenTtl"),
		NonceTtl:     viper.GetDuration("auth.nonceTtl"),
		Redis:        redisService,
		Erc1271:      erc1271,
	})

	if _, err := oracle.Bootstrap(
		context,
		domain.Address(viper.GetString("oracle.owner")).ToLower(),
		domain.Address(viper.GetString("oracle.nativeFeed")).ToLower(),
		viper.GetDuration("oracle.maxAge"),
	); err != nil {
		context.WithField("err", err).Panic("oracle.Bootstrap failed")
	}
	if _, err := factoryUC.Bootstrap(context, domain.Address(viper.GetString("factory.owner")).ToLower()); err != nil {
		context.WithField("err", err).Panic("factory.Bootstrap failed")
	}

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMw := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	event_delivery.New(e, eventUC)
	pricefeed_delivery.New(e, oracle, authMw, httpCache)
	bank_delivery.New(e, bankUC, authMw)
	nft_delivery.New(e, nftUC, authMw)
	auction_delivery.New(e, auctionUC, authMw, httpCache)
	factory_delivery.New(e, factoryUC, authMw, httpCache)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMw.Auth())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func mustEnsureIndexes(c ctx.Ctx, q query.Mongo) {
	ensures := map[string]func(ctx.Ctx, query.Mongo) error{
		"event":     event_repository.EnsureIndexes,
		"pricefeed": pricefeed_repository.EnsureIndexes,
		"bank":      bank_repository.EnsureIndexes,
		"nft":       nft_repository.EnsureIndexes,
		"auction":   auction_repository.EnsureIndexes,
		"factory":   factory_repository.EnsureIndexes,
	}
	for name, ensure := range ensures {
		if err := ensure(c, q); err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"store": name,
			}).Panic("EnsureIndexes failed")
		}
	}
}
