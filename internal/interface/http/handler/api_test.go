package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appcat "github.com/xiebiao/livraria/internal/application/catalog"
	apporder "github.com/xiebiao/livraria/internal/application/order"
	apppay "github.com/xiebiao/livraria/internal/application/payment"
	"github.com/xiebiao/livraria/internal/domain/catalog"
	"github.com/xiebiao/livraria/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/livraria/internal/interface/http/dto"
	apperrors "github.com/xiebiao/livraria/pkg/errors"
	"github.com/xiebiao/livraria/pkg/metrics"
	"github.com/xiebiao/livraria/pkg/response"
)

// setupRouter 组装完整HTTP栈：SQLite仓储+真实用例+gin路由
// 缓存和消息队列留空（可选协作方），与生产路由注册保持一致
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.InitMetrics()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, mysql.AutoMigrate(db))

	logger := zap.NewNop()
	txManager := mysql.NewTxManager(db)

	authorRepo := mysql.NewAuthorRepository(db)
	publisherRepo := mysql.NewPublisherRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	paymentRepo := mysql.NewPaymentRepository(db)

	var bookCatalogRepo catalog.Repository[catalog.Book] = bookRepo

	authorHandler := NewAuthorHandler(appcat.NewAuthorService(authorRepo))
	publisherHandler := NewPublisherHandler(appcat.NewPublisherService(publisherRepo))
	bookHandler := NewBookHandler(appcat.NewBookService(bookCatalogRepo, authorRepo, publisherRepo))
	customerHandler := NewCustomerHandler(appcat.NewCustomerService(customerRepo))

	orderHandler := NewOrderHandler(
		apporder.NewCreateOrderUseCase(orderRepo, customerRepo, bookRepo, txManager, nil, logger),
		apporder.NewGetOrderUseCase(orderRepo, nil, logger),
		apporder.NewListOrdersUseCase(orderRepo),
		apporder.NewUpdateOrderUseCase(orderRepo, customerRepo, txManager, nil, logger),
		apporder.NewDeleteOrderUseCase(orderRepo, txManager, nil, nil, logger),
		apporder.NewReconcileOrderUseCase(orderRepo, bookRepo),
	)
	paymentHandler := NewPaymentHandler(apppay.NewService(paymentRepo, orderRepo, txManager, nil, logger))

	r := gin.New()

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

	return r
}

// do 执行一次请求并解析JSON响应到out（out为nil时只返回状态码）
func do(t *testing.T, r *gin.Engine, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
			"resposta não é JSON válido: %s", w.Body.String())
	}
	return w.Code
}

// TestAPI_OrderLifecycle 核心业务流：建档→下单→支付→删除受阻→解除→删除
func TestAPI_OrderLifecycle(t *testing.T) {
	r := setupRouter(t)

	// 作者
	var author dto.AuthorResponse
	code := do(t, r, http.MethodPost, "/autores", gin.H{
		"name":        "Machado de Assis",
		"email":       "machado@exemplo.com",
		"birth_date":  "1839-06-21",
		"nationality": "Brasileiro",
	}, &author)
	require.Equal(t, http.StatusCreated, code)
	require.NotZero(t, author.ID)

	// 出版社
	var publisher dto.PublisherResponse
	code = do(t, r, http.MethodPost, "/editoras", gin.H{
		"name":    "Companhia das Letras",
		"address": "Rua Bandeira Paulista, 702",
		"phone":   "+55 11 3707-3500",
		"email":   "contato@companhia.com.br",
	}, &publisher)
	require.Equal(t, http.StatusCreated, code)

	// 两本图书
	var book1, book2 dto.BookResponse
	code = do(t, r, http.MethodPost, "/livros", gin.H{
		"title":        "Dom Casmurro",
		"price":        4990,
		"genre":        "Romance",
		"author_id":    author.ID,
		"publisher_id": publisher.ID,
	}, &book1)
	require.Equal(t, http.StatusCreated, code)
	code = do(t, r, http.MethodPost, "/livros", gin.H{
		"title": "Quincas Borba",
		"price": 3990,
		"genre": "Romance",
	}, &book2)
	require.Equal(t, http.StatusCreated, code)

	// 用户
	var customer dto.CustomerResponse
	code = do(t, r, http.MethodPost, "/usuarios", gin.H{
		"name":              "Maria Silva",
		"email":             "maria@exemplo.com",
		"tax_id":            "123.456.789-00",
		"registration_date": "2026-01-15",
	}, &customer)
	require.Equal(t, http.StatusCreated, code)

	// 下单
	var order dto.OrderResponse
	code = do(t, r, http.MethodPost, "/pedidos", gin.H{
		"customer_id": customer.ID,
		"order_date":  "2026-08-28",
		"status":      "pendente",
		"total_value": 8980,
		"book_ids":    []uint{book1.ID, book2.ID},
	}, &order)
	require.Equal(t, http.StatusCreated, code)
	assert.ElementsMatch(t, []uint{book1.ID, book2.ID}, order.BookIDs)
	assert.Equal(t, "2026-08-28", order.OrderDate)

	// 详情带customer投影
	var detail dto.OrderResponse
	code = do(t, r, http.MethodGet, fmt.Sprintf("/pedidos/%d", order.ID), nil, &detail)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, "Maria Silva", detail.Customer.Name)
	assert.Nil(t, detail.Payment)

	// 对账：存储总额与图书单价之和一致
	var reconcile dto.ReconcileResponse
	code = do(t, r, http.MethodGet, fmt.Sprintf("/pedidos/%d/conferir", order.ID), nil, &reconcile)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, reconcile.Consistent)
	assert.Equal(t, int64(8980), reconcile.ComputedTotal)

	// 支付
	var pay dto.PaymentResponse
	code = do(t, r, http.MethodPost, "/pagamentos", gin.H{
		"order_id":       order.ID,
		"payment_date":   "2026-08-28",
		"amount":         8980,
		"payment_method": "pix",
	}, &pay)
	require.Equal(t, http.StatusCreated, code)

	// 第二笔支付被拒
	var errBody response.ErrorBody
	code = do(t, r, http.MethodPost, "/pagamentos", gin.H{
		"order_id":       order.ID,
		"payment_date":   "2026-08-29",
		"amount":         8980,
		"payment_method": "boleto",
	}, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeConstraintViolation, errBody.Code)

	// 已支付订单不可删除
	code = do(t, r, http.MethodDelete, fmt.Sprintf("/pedidos/%d", order.ID), nil, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeDependencyConflict, errBody.Code)

	// 详情现在带payment投影
	code = do(t, r, http.MethodGet, fmt.Sprintf("/pedidos/%d", order.ID), nil, &detail)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, "pix", detail.Payment.PaymentMethod)

	// 删除支付后订单可删除
	code = do(t, r, http.MethodDelete, fmt.Sprintf("/pagamentos/%d", pay.ID), nil, nil)
	require.Equal(t, http.StatusOK, code)
	code = do(t, r, http.MethodDelete, fmt.Sprintf("/pedidos/%d", order.ID), nil, nil)
	require.Equal(t, http.StatusOK, code)

	code = do(t, r, http.MethodGet, fmt.Sprintf("/pedidos/%d", order.ID), nil, &errBody)
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, apperrors.ErrCodeOrderNotFound, errBody.Code)

	// 图书不受订单删除影响
	code = do(t, r, http.MethodGet, fmt.Sprintf("/livros/%d", book1.ID), nil, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestAPI_CreateOrderInvalidBook(t *testing.T) {
	r := setupRouter(t)

	var errBody response.ErrorBody
	code := do(t, r, http.MethodPost, "/pedidos", gin.H{
		"order_date":  "2026-08-28",
		"status":      "pendente",
		"total_value": 1000,
		"book_ids":    []uint{999},
	}, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeInvalidReference, errBody.Code)
	assert.Contains(t, errBody.Message, "Livro")

	// 订单头未残留
	var page response.PageData
	code = do(t, r, http.MethodGet, "/pedidos", nil, &page)
	require.Equal(t, http.StatusOK, code)
	assert.Zero(t, page.Total)
}

func TestAPI_MalformedDate(t *testing.T) {
	r := setupRouter(t)

	var errBody response.ErrorBody
	code := do(t, r, http.MethodPost, "/pedidos", gin.H{
		"order_date":  "28/08/2026",
		"status":      "pendente",
		"total_value": 0,
	}, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeInvalidDate, errBody.Code)
	assert.Contains(t, errBody.Message, "AAAA-MM-DD")
}

func TestAPI_PartialPatch(t *testing.T) {
	r := setupRouter(t)

	var book dto.BookResponse
	code := do(t, r, http.MethodPost, "/livros", gin.H{
		"title": "Dom Casmurro",
		"price": 4990,
		"genre": "Romance",
	}, &book)
	require.Equal(t, http.StatusCreated, code)

	// 只改价格，其余字段保持原值
	var updated dto.BookResponse
	code = do(t, r, http.MethodPatch, fmt.Sprintf("/livros/%d", book.ID), gin.H{
		"price": 5990,
	}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(5990), updated.Price)
	assert.Equal(t, "Dom Casmurro", updated.Title)
	assert.Equal(t, "Romance", updated.Genre)
}

func TestAPI_FilterAndCount(t *testing.T) {
	r := setupRouter(t)

	for i, name := range []string{"Machado de Assis", "Clarice Lispector", "José Saramago"} {
		nationality := "Brasileira"
		if i == 2 {
			nationality = "Portuguesa"
		}
		code := do(t, r, http.MethodPost, "/autores", gin.H{
			"name":        name,
			"email":       fmt.Sprintf("autor%d@exemplo.com", i),
			"birth_date":  "1900-01-01",
			"nationality": nationality,
		}, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	// 大小写不敏感的子串过滤
	var page response.PageData
	code := do(t, r, http.MethodGet, "/autores/filtrar?nationality=brasil", nil, &page)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), page.Total)

	// 计数端点
	var count dto.CountResponse
	code = do(t, r, http.MethodGet, "/autores/contar", nil, &count)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), count.Quantidade)

	// 零匹配：200 + 空页，不是404
	code = do(t, r, http.MethodGet, "/autores/filtrar?name=inexistente", nil, &page)
	require.Equal(t, http.StatusOK, code)
	assert.Zero(t, page.Total)
}

// TestAPI_BindFailuresReturn400 绑定失败是客户端错误，不是500
func TestAPI_BindFailuresReturn400(t *testing.T) {
	r := setupRouter(t)

	// 截断的JSON请求体
	req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewReader([]byte(`{"order_date":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, apperrors.ErrCodeBindError, errBody.Code)
	assert.Equal(t, "Dados inválidos", errBody.Message)

	// 字段类型不匹配
	code := do(t, r, http.MethodPost, "/pedidos", gin.H{
		"order_date":  "2026-08-28",
		"status":      "pendente",
		"total_value": "abc",
	}, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeBindError, errBody.Code)

	// 非数字的查询参数
	code = do(t, r, http.MethodGet, "/pedidos?limit=abc", nil, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeBindError, errBody.Code)
	assert.Equal(t, "Parâmetros inválidos", errBody.Message)
}

func TestAPI_InvalidIDParam(t *testing.T) {
	r := setupRouter(t)

	var errBody response.ErrorBody
	code := do(t, r, http.MethodGet, "/autores/abc", nil, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, errBody.Code)
}

func TestAPI_DuplicateTaxID(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{
		"name":              "Maria Silva",
		"email":             "maria@exemplo.com",
		"tax_id":            "123.456.789-00",
		"registration_date": "2026-01-15",
	}
	code := do(t, r, http.MethodPost, "/usuarios", body, nil)
	require.Equal(t, http.StatusCreated, code)

	var errBody response.ErrorBody
	code = do(t, r, http.MethodPost, "/usuarios", body, &errBody)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperrors.ErrCodeConstraintViolation, errBody.Code)
}
