// Package ui serves validation over HTTP: a JSON endpoint for tools and a
// single form page for people.
package ui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/dhamidi/tagcheck/markup"
	"github.com/gin-gonic/gin"
	"github.com/tliron/commonlog"
)

//go:embed templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("tagcheck.ui")

const (
	PingURL     = "/ping"
	ValidateURL = "/validate"
	IndexURL    = "/"
)

type Server struct {
	router *gin.Engine
	opts   []markup.Option
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{err.Error()}
}

type validateRequest struct {
	Source string  `json:"source"`
	Text   *string `json:"text" binding:"required"`
}

type validateResponse struct {
	Source string                   `json:"source,omitempty"`
	Tags   []markup.Token           `json:"tags"`
	Errors []markup.ValidationError `json:"errors"`
}

type pageData struct {
	Text    string
	Checked bool
	Failure string
	Tags    []markup.Token
	Errors  []markup.ValidationError
}

func NewServer(opts ...markup.Option) (*Server, error) {
	templates, err := template.ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{opts: opts}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetHTMLTemplate(templates)

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})
	router.POST(ValidateURL, s.validate)
	router.GET(IndexURL, s.index)
	router.POST(IndexURL, s.submit)

	s.router = router
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) validate(ctx *gin.Context) {
	var req validateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	result, err := markup.Validate(*req.Text, s.opts...)
	if err != nil {
		log.Errorf("validate %s: %s", req.Source, err)
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, validateResponse{
		Source: req.Source,
		Tags:   result.Tags,
		Errors: result.Errors,
	})
}

func (s *Server) index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", pageData{})
}

func (s *Server) submit(ctx *gin.Context) {
	data := pageData{Text: ctx.PostForm("text"), Checked: true}

	result, err := markup.Validate(data.Text, s.opts...)
	if err != nil {
		data.Failure = err.Error()
		ctx.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	data.Tags = result.Tags
	data.Errors = result.Errors
	ctx.HTML(http.StatusOK, "index.html", data)
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Infof("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
	}
}
