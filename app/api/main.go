package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/base/database/mongoclient"
	"github.com/openmint/marketapi/base/database/redisclient"
	"github.com/openmint/marketapi/base/log"
	"github.com/openmint/marketapi/base/metrics"
	bValidator "github.com/openmint/marketapi/base/validator"
	"github.com/openmint/marketapi/domain"
	mmiddleware "github.com/openmint/marketapi/middleware"
	"github.com/openmint/marketapi/service/query"
	"github.com/openmint/marketapi/service/redis"
	account_repository "github.com/openmint/marketapi/stores/account/repository"
	auction_delivery "github.com/openmint/marketapi/stores/auction/delivery/http"
	auction_repository "github.com/openmint/marketapi/stores/auction/repository"
	auction_usecase "github.com/openmint/marketapi/stores/auction/usecase"
	escrow_repository "github.com/openmint/marketapi/stores/escrow/repository"
	escrow_usecase "github.com/openmint/marketapi/stores/escrow/usecase"
	hc_delivery "github.com/openmint/marketapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/openmint/marketapi/stores/healthcheck/repository"
	hc_usecase "github.com/openmint/marketapi/stores/healthcheck/usecase"
	item_delivery "github.com/openmint/marketapi/stores/item/delivery/http"
	item_repository "github.com/openmint/marketapi/stores/item/repository"
	item_usecase "github.com/openmint/marketapi/stores/item/usecase"
	listing_delivery "github.com/openmint/marketapi/stores/listing/delivery/http"
	listing_repository "github.com/openmint/marketapi/stores/listing/repository"
	listing_usecase "github.com/openmint/marketapi/stores/listing/usecase"
	marketplace_delivery "github.com/openmint/marketapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/openmint/marketapi/stores/marketplace/repository"
	marketplace_usecase "github.com/openmint/marketapi/stores/marketplace/usecase"
	metadata_delivery "github.com/openmint/marketapi/stores/metadata/delivery/http"
	metadata_repository "github.com/openmint/marketapi/stores/metadata/repository"
	metadata_usecase "github.com/openmint/marketapi/stores/metadata/usecase"
	wallet_delivery "github.com/openmint/marketapi/stores/wallet/delivery/http"
	wallet_repository "github.com/openmint/marketapi/stores/wallet/repository"
	wallet_usecase "github.com/openmint/marketapi/stores/wallet/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
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
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	marketplaceRepo := marketplace_repository.NewMarketplaceRepo(q)
	listingRepo := listing_repository.NewListingRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	escrowRepo := escrow_repository.NewEscrowRepo(q)
	walletRepo := wallet_repository.NewWalletRepo(q)
	holdingRepo := item_repository.NewHoldingRepo(q)
	metadataRepo := metadata_repository.NewMetadataRepo(q, redisCache)
	activityRepo := account_repository.NewActivityHistoryRepo(q)

	hc := hc_usecase.New(hcRepo)
	itemService := item_usecase.New(&item_usecase.ServiceCfg{
		HoldingRepo: holdingRepo,
	})
	ledger := wallet_usecase.New(&wallet_usecase.LedgerCfg{
		WalletRepo: walletRepo,
	})
	custodian := escrow_usecase.New(&escrow_usecase.CustodianCfg{
		EscrowRepo:  escrowRepo,
		ItemService: itemService,
		Ledger:      ledger,
	})
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		MarketplaceRepo: marketplaceRepo,
	})

	// bootstrap the registry from config so a fresh deployment can
	// settle sales without a manual initialize call
	if authority := viper.GetString("marketplace.authority"); authority != "" {
		treasury := viper.GetString("marketplace.treasury")
		feeBps := viper.GetInt("marketplace.feeBps")
		if _, err := marketplaceUC.Initialize(context, domain.Address(authority), domain.Address(treasury), uint16(feeBps)); err != nil && err != domain.ErrConflict {
			log.Log().WithField("err", err).Panic("initialize marketplace failed")
		}
	}
	metadataUC := metadata_usecase.New(&metadata_usecase.MetadataUseCaseCfg{
		MetadataRepo: metadataRepo,
	})
	verifier := metadata_usecase.NewVerifier(&metadata_usecase.MetadataUseCaseCfg{
		MetadataRepo: metadataRepo,
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:   listingRepo,
		MarketplaceUC: marketplaceUC,
		Custodian:     custodian,
		Ledger:        ledger,
		Verifier:      verifier,
		ActivityRepo:  activityRepo,
		TxRunner:      q,
		Redis:         redisCache,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:   auctionRepo,
		MarketplaceUC: marketplaceUC,
		Custodian:     custodian,
		ActivityRepo:  activityRepo,
		TxRunner:      q,
	})

	hc_delivery.New(e, hc)
	marketplace_delivery.New(e, marketplaceUC)
	listing_delivery.New(e, listingUC)
	auction_delivery.New(e, auctionUC)
	item_delivery.New(e, itemService, activityRepo, q)
	wallet_delivery.New(e, ledger)
	metadata_delivery.New(e, metadataUC)

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
