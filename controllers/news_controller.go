package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"newsroom/config"
	"newsroom/middleware"
	"newsroom/models"
	"newsroom/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
)

type NewsController struct {
	cfg         *config.Config
	newsService *services.NewsService
	workflow    *services.AddPostWorkflow
	hubService  *services.HubService
}

func NewNewsController(cfg *config.Config, newsService *services.NewsService, workflow *services.AddPostWorkflow, hubService *services.HubService) *NewsController {
	return &NewsController{
		cfg:         cfg,
		newsService: newsService,
		workflow:    workflow,
		hubService:  hubService,
	}
}

// List renders every post.
func (nc *NewsController) List(c *gin.Context) {
	posts, err := nc.newsService.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list news: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": nc.cfg.FeedTitle,
		"site":  nc.cfg.FeedTitle,
		"posts": posts,
	})
}

// Show renders one post by slug.
func (nc *NewsController) Show(c *gin.Context) {
	post, err := nc.newsService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, models.ErrNotFound) {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{
			"title":   "Not found",
			"site":    nc.cfg.FeedTitle,
			"message": err.Error(),
		})
		return
	}
	if err != nil {
		log.Printf("Failed to load news %q: %v", c.Param("slug"), err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "show.html", gin.H{
		"title": post.Name,
		"site":  nc.cfg.FeedTitle,
		"post":  post,
	})
}

// Feed writes an RSS document of every post.
func (nc *NewsController) Feed(c *gin.Context) {
	posts, err := nc.newsService.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list news for feed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       nc.cfg.FeedTitle,
		Link:        &feeds.Link{Href: nc.cfg.BaseURL + "/"},
		Description: nc.cfg.FeedTitle,
		Created:     time.Now(),
	}
	for _, post := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          post.Link,
			Title:       post.Name,
			Link:        &feeds.Link{Href: post.Link},
			Description: post.Description,
			Created:     post.Date,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		log.Printf("RSS error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}

// GetNews godoc
// @Summary List news
// @Tags news
// @Produce json
// @Success 200 {object} map[string][]models.NewsResponse
// @Router /news [get]
func (nc *NewsController) GetNews(c *gin.Context) {
	posts, err := nc.newsService.ListAll(c.Request.Context())
	if err != nil {
		models.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": models.NewNewsResponses(posts)})
}

// GetNewsBySlug godoc
// @Summary Get a news post
// @Tags news
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]models.NewsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /news/{slug} [get]
func (nc *NewsController) GetNewsBySlug(c *gin.Context) {
	post, err := nc.newsService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		models.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": models.NewNewsResponse(*post)})
}

// CreateNews godoc
// @Summary Add a news post
// @Tags news
// @Accept json
// @Produce json
// @Param request body models.CreateNewsRequest true "New post"
// @Success 201 {object} map[string]models.NewsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /news [post]
func (nc *NewsController) CreateNews(c *gin.Context) {
	var req models.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := nc.workflow.Execute(c.Request.Context(), req.Input())
	if err != nil {
		models.RespondWithError(c, err)
		return
	}
	post.Link = nc.newsService.Link(post.Slug)

	log.Printf("News %q created by %v", post.Slug, c.GetString(middleware.OperatorKey))
	if nc.hubService != nil {
		nc.hubService.PublishNews(*post)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "News created successfully",
		"data":    models.NewNewsResponse(*post),
	})
}
