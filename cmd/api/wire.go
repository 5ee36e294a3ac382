//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
// Step 1: 维护本文件的Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
//
// main.go中的手动组装与这里等价；两者保持同步

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	apporder "github.com/xiebiao/livraria/internal/application/order"
	apppay "github.com/xiebiao/livraria/internal/application/payment"
	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/infrastructure/config"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/livraria/internal/interface/http/handler"
	"github.com/xiebiao/livraria/internal/interface/http/middleware"
	"github.com/xiebiao/livraria/pkg/logger"
	"github.com/xiebiao/livraria/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	mysql.NewDB,
	mysql.NewTxManager,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewPublisherRepository,
	mysql.NewBookRepository,
	mysql.NewCustomerRepository,
	mysql.NewOrderRepository,
	mysql.NewPaymentRepository,
	provideBookCatalogRepository,
	provideBookLookup,
)

// provideBookCatalogRepository 图书仓储的通用CRUD视图
func provideBookCatalogRepository(repo mysql.BookRepository) catalog.Repository[catalog.Book] {
	return repo
}

// provideBookLookup 图书仓储的查找视图（订单校验/对账用）
func provideBookLookup(repo mysql.BookRepository) catalog.BookLookup {
	return repo
}

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcat.NewAuthorService,
	appcat.NewPublisherService,
	appcat.NewBookService,
	appcat.NewCustomerService,
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewUpdateOrderUseCase,
	apporder.NewDeleteOrderUseCase,
	apporder.NewReconcileOrderUseCase,
	apppay.NewService,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewPublisherHandler,
	handler.NewBookHandler,
	handler.NewCustomerHandler,
	handler.NewOrderHandler,
	handler.NewPaymentHandler,
)

// optionalSet 可选能力：缓存与事件发布（未启用时为nil，用例侧跳过）
var optionalSet = wire.NewSet(
	provideOrderCache,
	providePaymentOrderCache,
	provideEventPublisher,
)

// provideLogger 从配置创建zap日志
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log)
}

// provideOrderCache redis.enabled=false时返回nil
func provideOrderCache(cfg *config.Config) (apporder.Cache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewOrderCache(client, cfg.Redis.OrderTTL), nil
}

// providePaymentOrderCache 支付服务复用同一个订单缓存
func providePaymentOrderCache(cache apporder.Cache) apppay.OrderCache {
	if cache == nil {
		return nil
	}
	return cache
}

// provideEventPublisher rabbitmq.enabled=false时返回nil
func provideEventPublisher(cfg *config.Config) (apporder.EventPublisher, error) {
	if !cfg.RabbitMQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, "topic")
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	zlog *zap.Logger,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
	bookHandler *handler.BookHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing())

	registerRoutes(r, authorHandler, publisherHandler, bookHandler, customerHandler, orderHandler, paymentHandler)
	return r
}

// InitializeApp 初始化整个应用
// Wire会在wire_gen.go中生成实际的初始化代码；这里的返回值是占位符
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		optionalSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
