// Package docs holds the Swagger 2.0 document served at /swagger/*. It is kept
// in sync with the godoc annotations on the handlers by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CommentsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Create comment",
                "parameters": [
                    {"description": "Comment payload", "name": "comment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CommentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List posts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PostsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Create post",
                "parameters": [
                    {"description": "Post payload", "name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreatePostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.PostResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/posts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get post by id",
                "parameters": [
                    {"type": "integer", "description": "Post ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PostDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UsersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"description": "User payload", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserDetailResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user by id",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/model.UserSummary"}}
        },
        "handler.CommentResponse": {
            "type": "object",
            "properties": {"comment": {"$ref": "#/definitions/model.Comment"}}
        },
        "handler.CommentsResponse": {
            "type": "object",
            "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/model.CommentListItem"}}}
        },
        "handler.CreateCommentRequest": {
            "type": "object",
            "required": ["authorId", "content", "postId"],
            "properties": {"authorId": {"type": "integer"}, "content": {"type": "string"}, "postId": {"type": "integer"}}
        },
        "handler.CreatePostRequest": {
            "type": "object",
            "required": ["authorId", "title"],
            "properties": {"authorId": {"type": "integer"}, "content": {"type": "string"}, "published": {"type": "boolean"}, "title": {"type": "string"}}
        },
        "handler.CreateUserRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.PostDetailResponse": {
            "type": "object",
            "properties": {"post": {"$ref": "#/definitions/model.PostDetail"}}
        },
        "handler.PostResponse": {
            "type": "object",
            "properties": {"post": {"$ref": "#/definitions/model.Post"}}
        },
        "handler.PostsResponse": {
            "type": "object",
            "properties": {"posts": {"type": "array", "items": {"$ref": "#/definitions/model.PostListItem"}}}
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.UserDetailResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/model.UserDetail"}}
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/model.UserSummary"}}
        },
        "handler.UsersResponse": {
            "type": "object",
            "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/model.UserListItem"}}}
        },
        "model.AuthorRef": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "model.Comment": {
            "type": "object",
            "properties": {"authorId": {"type": "integer"}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "id": {"type": "integer"}, "postId": {"type": "integer"}}
        },
        "model.CommentListItem": {
            "type": "object",
            "properties": {"author": {"$ref": "#/definitions/model.AuthorRef"}, "authorId": {"type": "integer"}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "id": {"type": "integer"}, "post": {"$ref": "#/definitions/model.PostRef"}, "postId": {"type": "integer"}}
        },
        "model.CommentWithAuthor": {
            "type": "object",
            "properties": {"author": {"$ref": "#/definitions/model.AuthorRef"}, "authorId": {"type": "integer"}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "id": {"type": "integer"}, "postId": {"type": "integer"}}
        },
        "model.Post": {
            "type": "object",
            "properties": {"authorId": {"type": "integer"}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "id": {"type": "integer"}, "published": {"type": "boolean"}, "title": {"type": "string"}}
        },
        "model.PostDetail": {
            "type": "object",
            "properties": {"author": {"$ref": "#/definitions/model.AuthorRef"}, "authorId": {"type": "integer"}, "comments": {"type": "array", "items": {"$ref": "#/definitions/model.CommentWithAuthor"}}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "id": {"type": "integer"}, "published": {"type": "boolean"}, "title": {"type": "string"}}
        },
        "model.PostListItem": {
            "type": "object",
            "properties": {"author": {"$ref": "#/definitions/model.AuthorRef"}, "authorId": {"type": "integer"}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "id": {"type": "integer"}, "published": {"type": "boolean"}, "title": {"type": "string"}}
        },
        "model.PostRef": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "title": {"type": "string"}}
        },
        "model.UserDetail": {
            "type": "object",
            "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/model.Comment"}}, "createdAt": {"type": "string"}, "email": {"type": "string"}, "id": {"type": "integer"}, "name": {"type": "string"}, "posts": {"type": "array", "items": {"$ref": "#/definitions/model.Post"}}}
        },
        "model.UserListItem": {
            "type": "object",
            "properties": {"createdAt": {"type": "string"}, "email": {"type": "string"}, "id": {"type": "integer"}, "name": {"type": "string"}, "posts": {"type": "array", "items": {"$ref": "#/definitions/model.PostRef"}}}
        },
        "model.UserSummary": {
            "type": "object",
            "properties": {"createdAt": {"type": "string"}, "email": {"type": "string"}, "id": {"type": "integer"}, "name": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Blog API",
	Description:      "Blog API with users, posts, comments and JWT authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
