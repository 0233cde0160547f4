package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eternisai/text2mindmap/internal/credentials"
	apierrors "github.com/eternisai/text2mindmap/internal/errors"
	"github.com/eternisai/text2mindmap/internal/logger"
	"github.com/eternisai/text2mindmap/internal/mindmap"
	"github.com/eternisai/text2mindmap/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	pageTitle   = "Text to Mindmap with Groq"
	errNoClient = "Please provide a valid Groq API key first."
)

// Generator is what the handlers need from mindmap.Generator.
type Generator interface {
	Generate(ctx context.Context, credential, text string) mindmap.Result
	Connect(credential string) error
	Settings() mindmap.Settings
}

// Handler serves the single-page UI and its JSON twin.
type Handler struct {
	generator Generator
	resolver  *credentials.Resolver
	sessions  *session.Store
	renderer  Renderer
	sidebar   Sidebar
	logger    *logger.Logger
}

func NewHandler(generator Generator, resolver *credentials.Resolver, sessions *session.Store, renderer Renderer, tips []string, log *logger.Logger) *Handler {
	return &Handler{
		generator: generator,
		resolver:  resolver,
		sessions:  sessions,
		renderer:  renderer,
		sidebar:   NewSidebar(generator.Settings(), tips),
		logger:    log.WithComponent("web"),
	}
}

// RegisterPages mounts the browser routes. They expect SessionMiddleware.
func (h *Handler) RegisterPages(router gin.IRouter) {
	router.GET("/", h.Index)
	router.POST("/mindmap", h.Submit)
	router.POST("/session/credential", h.ReplaceCredential)
	router.POST("/session/logout", h.Logout)
}

// RegisterAPI mounts the JSON routes. They are stateless: the key comes from
// the secret store or the request body, never from a session.
func (h *Handler) RegisterAPI(router gin.IRouter) {
	api := router.Group("/api/v1")
	{
		api.POST("/mindmaps", h.CreateMindmap)
	}
}

// GET /
func (h *Handler) Index(c *gin.Context) {
	page, _ := h.setup(c, "")
	h.render(c, http.StatusOK, page)
}

// POST /mindmap
// text and api_key are read from the same form post.
func (h *Handler) Submit(c *gin.Context) {
	text := c.PostForm("text")
	page, res := h.setup(c, c.PostForm("api_key"))
	page.Text = text

	if strings.TrimSpace(text) == "" {
		h.render(c, http.StatusOK, page)
		return
	}

	if !res.Ok() || !page.Connected {
		page.State = StateError
		if page.Error == "" {
			page.Error = errNoClient
		}
		h.render(c, http.StatusOK, page)
		return
	}

	switch r := h.generator.Generate(c.Request.Context(), res.Key, text).(type) {
	case mindmap.Success:
		if r.Markdown != "" {
			page.State = StateResult
			page.Mindmap = newMindmapView(r.Markdown)
		}
	case mindmap.Failure:
		page.State = StateError
		page.Error = r.Message
	}

	h.render(c, http.StatusOK, page)
}

// POST /session/credential
func (h *Handler) ReplaceCredential(c *gin.Context) {
	if sess := currentSession(c); sess != nil {
		sess.ReplaceCredential(c.PostForm("api_key"))
		h.logger.WithContext(c.Request.Context()).Info("session credential replaced")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /session/logout
// Ends the session: the held key is dropped and the cookie expired, so the
// next visit starts from a fresh session.
func (h *Handler) Logout(c *gin.Context) {
	if sess := currentSession(c); sess != nil {
		sess.ClearCredential()
		h.sessions.Delete(sess.ID)
		h.logger.WithContext(c.Request.Context()).Info("session ended")
	}
	expireSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// CreateMindmapRequest is the JSON body for POST /api/v1/mindmaps.
type CreateMindmapRequest struct {
	Text   string `json:"text"`
	APIKey string `json:"api_key,omitempty"`
}

// CreateMindmapResponse carries the raw markdown and its outline shape.
type CreateMindmapResponse struct {
	Markdown string               `json:"markdown"`
	Model    string               `json:"model"`
	Outline  mindmap.OutlineStats `json:"outline"`
}

// POST /api/v1/mindmaps
func (h *Handler) CreateMindmap(c *gin.Context) {
	var req CreateMindmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request: "+err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		apierrors.BadRequest(c, "text is required", nil)
		return
	}

	res := h.resolver.Resolve(c.Request.Context(), nil, req.APIKey)
	if !res.Ok() {
		apierrors.Unauthorized(c, errNoClient, nil)
		return
	}

	switch r := h.generator.Generate(c.Request.Context(), res.Key, req.Text).(type) {
	case mindmap.Success:
		c.JSON(http.StatusOK, CreateMindmapResponse{
			Markdown: r.Markdown,
			Model:    h.generator.Settings().Model,
			Outline:  mindmap.Outline(r.Markdown),
		})
	case mindmap.Failure:
		details := map[string]interface{}{"kind": string(r.Kind)}
		switch r.Kind {
		case mindmap.FailureMissingCredential:
			apierrors.Unauthorized(c, r.Message, details)
		case mindmap.FailureClientSetup:
			apierrors.BadRequest(c, r.Message, details)
		case mindmap.FailureRemote:
			apierrors.BadGateway(c, r.Message, details)
		}
	}
}

// setup resolves the credential and checks that a client can be built,
// mirroring what happens at the top of every page render.
func (h *Handler) setup(c *gin.Context, prompt string) (*Page, credentials.Resolution) {
	res := h.resolver.Resolve(c.Request.Context(), sessionCredential(c), prompt)

	page := &Page{
		Title:           pageTitle,
		Caption:         fmt.Sprintf("Using %s model", h.generator.Settings().Model),
		State:           StateAwaiting,
		NeedsCredential: !res.Ok(),
		Sidebar:         h.sidebar,
	}
	if !res.Ok() {
		return page, res
	}

	page.SessionCredential = res.Source != credentials.SourceStore
	if err := h.generator.Connect(res.Key); err != nil {
		h.logger.WithContext(c.Request.Context()).Warn("client setup failed", slog.String("error", err.Error()))
		page.Error = fmt.Sprintf("Failed to initialize Groq client: %v", err)
		page.State = StateError
		return page, res
	}
	page.Connected = true
	return page, res
}

func (h *Handler) render(c *gin.Context, status int, page *Page) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := h.renderer.Render(c.Writer, page); err != nil {
		h.logger.LogError(c.Request.Context(), err, "failed to render page")
	}
}
