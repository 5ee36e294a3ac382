// Package docs 注册Swagger文档（由swag维护，路由详情见handler注解）
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/autores": {
            "get": {"tags": ["Autores"], "summary": "作者列表", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Autores"], "summary": "创建作者", "responses": {"201": {"description": "Created"}}}
        },
        "/autores/contar": {
            "get": {"tags": ["Autores"], "summary": "作者计数", "responses": {"200": {"description": "OK"}}}
        },
        "/autores/filtrar": {
            "get": {"tags": ["Autores"], "summary": "作者过滤查询", "responses": {"200": {"description": "OK"}}}
        },
        "/autores/{id}": {
            "get": {"tags": ["Autores"], "summary": "作者详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Autores"], "summary": "作者部分更新", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Autores"], "summary": "删除作者", "responses": {"200": {"description": "OK"}}}
        },
        "/editoras": {
            "get": {"tags": ["Editoras"], "summary": "出版社列表", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Editoras"], "summary": "创建出版社", "responses": {"201": {"description": "Created"}}}
        },
        "/editoras/contar": {
            "get": {"tags": ["Editoras"], "summary": "出版社计数", "responses": {"200": {"description": "OK"}}}
        },
        "/editoras/filtrar": {
            "get": {"tags": ["Editoras"], "summary": "出版社过滤查询", "responses": {"200": {"description": "OK"}}}
        },
        "/editoras/{id}": {
            "get": {"tags": ["Editoras"], "summary": "出版社详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Editoras"], "summary": "出版社部分更新", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Editoras"], "summary": "删除出版社", "responses": {"200": {"description": "OK"}}}
        },
        "/livros": {
            "get": {"tags": ["Livros"], "summary": "图书列表", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Livros"], "summary": "创建图书", "responses": {"201": {"description": "Created"}}}
        },
        "/livros/contar": {
            "get": {"tags": ["Livros"], "summary": "图书计数", "responses": {"200": {"description": "OK"}}}
        },
        "/livros/filtrar": {
            "get": {"tags": ["Livros"], "summary": "图书过滤查询", "responses": {"200": {"description": "OK"}}}
        },
        "/livros/{id}": {
            "get": {"tags": ["Livros"], "summary": "图书详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Livros"], "summary": "图书部分更新", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Livros"], "summary": "删除图书", "responses": {"200": {"description": "OK"}}}
        },
        "/usuarios": {
            "get": {"tags": ["Usuários"], "summary": "用户列表", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Usuários"], "summary": "创建用户", "responses": {"201": {"description": "Created"}}}
        },
        "/usuarios/contar": {
            "get": {"tags": ["Usuários"], "summary": "用户计数", "responses": {"200": {"description": "OK"}}}
        },
        "/usuarios/filtrar": {
            "get": {"tags": ["Usuários"], "summary": "用户过滤查询", "responses": {"200": {"description": "OK"}}}
        },
        "/usuarios/{id}": {
            "get": {"tags": ["Usuários"], "summary": "用户详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Usuários"], "summary": "用户部分更新", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Usuários"], "summary": "删除用户", "responses": {"200": {"description": "OK"}}}
        },
        "/pedidos": {
            "get": {"tags": ["Pedidos"], "summary": "订单列表", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Pedidos"], "summary": "创建订单", "responses": {"201": {"description": "Created"}}}
        },
        "/pedidos/contar": {
            "get": {"tags": ["Pedidos"], "summary": "订单计数", "responses": {"200": {"description": "OK"}}}
        },
        "/pedidos/filtrar": {
            "get": {"tags": ["Pedidos"], "summary": "订单过滤查询", "responses": {"200": {"description": "OK"}}}
        },
        "/pedidos/{id}": {
            "get": {"tags": ["Pedidos"], "summary": "订单详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Pedidos"], "summary": "订单部分更新", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Pedidos"], "summary": "删除订单", "responses": {"200": {"description": "OK"}}}
        },
        "/pedidos/{id}/conferir": {
            "get": {"tags": ["Pedidos"], "summary": "订单总额对账", "responses": {"200": {"description": "OK"}}}
        },
        "/pagamentos": {
            "get": {"tags": ["Pagamentos"], "summary": "支付列表", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Pagamentos"], "summary": "创建支付", "responses": {"201": {"description": "Created"}}}
        },
        "/pagamentos/contar": {
            "get": {"tags": ["Pagamentos"], "summary": "支付计数", "responses": {"200": {"description": "OK"}}}
        },
        "/pagamentos/filtrar": {
            "get": {"tags": ["Pagamentos"], "summary": "支付过滤查询", "responses": {"200": {"description": "OK"}}}
        },
        "/pagamentos/{id}": {
            "get": {"tags": ["Pagamentos"], "summary": "支付详情", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Pagamentos"], "summary": "支付部分更新", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Pagamentos"], "summary": "删除支付", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo 文档元信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Livraria API",
	Description:      "Backend de gerenciamento de livraria: autores, editoras, livros, usuários, pedidos e pagamentos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
