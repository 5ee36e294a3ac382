package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/livraria/docs"
	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	apporder "github.com/xiebiao/livraria/internal/application/order"
	apppay "github.com/xiebiao/livraria/internal/application/payment"
	"github.com/xiebiao/livraria/internal/infrastructure/config"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/livraria/internal/interface/http/handler"
	"github.com/xiebiao/livraria/internal/interface/http/middleware"
	"github.com/xiebiao/livraria/pkg/logger"
	"github.com/xiebiao/livraria/pkg/metrics"
	"github.com/xiebiao/livraria/pkg/mq"
	"github.com/xiebiao/livraria/pkg/response"
	"github.com/xiebiao/livraria/pkg/tracing"
)

// @title           Livraria API
// @version         1.0
// @description     Backend de gerenciamento de livraria: autores, editoras, livros, usuários, pedidos e pagamentos.
// @BasePath        /

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的编译期生成版本）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
	)

	// 3. 初始化指标和追踪
	metrics.InitMetrics()

	shutdownTracing, err := tracing.Init(cfg.Tracing)
	if err != nil {
		log.Fatalf("初始化追踪失败: %v", err)
	}

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 可选能力：Redis缓存、RabbitMQ事件
	var orderCache apporder.Cache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		orderCache = redis.NewOrderCache(redisClient, cfg.Redis.OrderTTL)
		zlog.Info("Redis缓存已启用", zap.String("addr", cfg.Redis.Addr()))
	}

	var publisher apporder.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
		zlog.Info("事件发布已启用", zap.String("exchange", cfg.RabbitMQ.Exchange))
	}

	// 6. 依赖注入（手动组装）
	// 依赖链：Repository ← UseCase/Service ← Handler

	// 基础设施层
	txManager := mysql.NewTxManager(db)
	authorRepo := mysql.NewAuthorRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	paymentRepo := mysql.NewPaymentRepository(db)

	// 应用层
	authorService := appcat.NewAuthorService(authorRepo)
	publisherService := appcat.NewPublisherService(publisherRepo)
	bookService := appcat.NewBookService(bookRepo, authorRepo, publisherRepo)
	customerService := appcat.NewCustomerService(customerRepo)

	createOrderUC := apporder.NewCreateOrderUseCase(orderRepo, customerRepo, bookRepo, txManager, publisher, zlog)
	getOrderUC := apporder.NewGetOrderUseCase(orderRepo, orderCache, zlog)
	listOrdersUC := apporder.NewListOrdersUseCase(orderRepo)
	updateOrderUC := apporder.NewUpdateOrderUseCase(orderRepo, customerRepo, txManager, orderCache, zlog)
	deleteOrderUC := apporder.NewDeleteOrderUseCase(orderRepo, txManager, orderCache, publisher, zlog)
	reconcileOrderUC := apporder.NewReconcileOrderUseCase(orderRepo, bookRepo)

	paymentService := apppay.NewService(paymentRepo, orderRepo, txManager, orderCache, zlog)

	// 接口层
	authorHandler := handler.NewAuthorHandler(authorService)
	publisherHandler := handler.NewPublisherHandler(publisherService)
	bookHandler := handler.NewBookHandler(bookService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(createOrderUC, getOrderUC, listOrdersUC, updateOrderUC, deleteOrderUC, reconcileOrderUC)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing())

	// 8. 注册路由
	registerRoutes(r, authorHandler, publisherHandler, bookHandler, customerHandler, orderHandler, paymentHandler)

	// 9. 启动服务（带优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zlog.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 等待退出信号，flush追踪数据后关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zlog.Info("收到退出信号，开始关闭")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("关闭HTTP服务失败", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		zlog.Error("关闭追踪失败", zap.Error(err))
	}

	zlog.Info("服务已退出")
}

// registerRoutes 注册路由
// 资源路径保持葡语命名（/autores、/editoras、/livros、/usuarios、/pedidos、/pagamentos）
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
	bookHandler *handler.BookHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档（访问/swagger/index.html）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 作者模块
	autores := r.Group("/autores")
	{
		autores.POST("", authorHandler.Create)
		autores.GET("", authorHandler.List)
		autores.GET("/contar", authorHandler.Count)
		autores.GET("/filtrar", authorHandler.Filter)
		autores.GET("/:id", authorHandler.Get)
		autores.PATCH("/:id", authorHandler.Update)
		autores.DELETE("/:id", authorHandler.Delete)
	}

	// 出版社模块
	editoras := r.Group("/editoras")
	{
		editoras.POST("", publisherHandler.Create)
		editoras.GET("", publisherHandler.List)
		editoras.GET("/contar", publisherHandler.Count)
		editoras.GET("/filtrar", publisherHandler.Filter)
		editoras.GET("/:id", publisherHandler.Get)
		editoras.PATCH("/:id", publisherHandler.Update)
		editoras.DELETE("/:id", publisherHandler.Delete)
	}

	// 图书模块
	livros := r.Group("/livros")
	{
		livros.POST("", bookHandler.Create)
		livros.GET("", bookHandler.List)
		livros.GET("/contar", bookHandler.Count)
		livros.GET("/filtrar", bookHandler.Filter)
		livros.GET("/:id", bookHandler.Get)
		livros.PATCH("/:id", bookHandler.Update)
		livros.DELETE("/:id", bookHandler.Delete)
	}

	// 用户模块
	usuarios := r.Group("/usuarios")
	{
		usuarios.POST("", customerHandler.Create)
		usuarios.GET("", customerHandler.List)
		usuarios.GET("/contar", customerHandler.Count)
		usuarios.GET("/filtrar", customerHandler.Filter)
		usuarios.GET("/:id", customerHandler.Get)
		usuarios.PATCH("/:id", customerHandler.Update)
		usuarios.DELETE("/:id", customerHandler.Delete)
	}

	// 订单模块（聚合核心）
	pedidos := r.Group("/pedidos")
	{
		pedidos.POST("", orderHandler.Create)
		pedidos.GET("", orderHandler.List)
		pedidos.GET("/contar", orderHandler.Count)
		pedidos.GET("/filtrar", orderHandler.Filter)
		pedidos.GET("/:id", orderHandler.Get)
		pedidos.GET("/:id/conferir", orderHandler.Reconcile)
		pedidos.PATCH("/:id", orderHandler.Update)
		pedidos.DELETE("/:id", orderHandler.Delete)
	}

	// 支付模块
	pagamentos := r.Group("/pagamentos")
	{
		pagamentos.POST("", paymentHandler.Create)
		pagamentos.GET("", paymentHandler.List)
		pagamentos.GET("/contar", paymentHandler.Count)
		pagamentos.GET("/filtrar", paymentHandler.Filter)
		pagamentos.GET("/:id", paymentHandler.Get)
		pagamentos.PATCH("/:id", paymentHandler.Update)
		pagamentos.DELETE("/:id", paymentHandler.Delete)
	}
}
