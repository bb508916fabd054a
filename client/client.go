// Package client is a thin typed HTTP client for the travel blog API,
// together with a data store that keeps a local view of posts and
// categories for rendering.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/openroam/travelblog/models"
)

const defaultTimeout = 10 * time.Second

// APIError carries the status and message of a non-2xx API response.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// Client talks to the travel blog API using typed endpoint builders.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

// New creates a client for the given base URL. An empty base URL falls back
// to the API_BASE_URL environment variable, then to localhost.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken attaches an admin session token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// ListPosts fetches all posts with author and category summaries.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, http.MethodGet, Posts(), nil, &posts)
	return posts, err
}

// GetPostBySlug fetches one post.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodGet, PostBySlug(slug), nil, &post)
	return post, err
}

// SearchPosts runs a substring search.
func (c *Client) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, http.MethodGet, SearchPosts(query), nil, &posts)
	return posts, err
}

// ListCategories fetches all categories with computed post counts.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.do(ctx, http.MethodGet, Categories(), nil, &categories)
	return categories, err
}

// ListAuthors fetches all authors.
func (c *Client) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	err := c.do(ctx, http.MethodGet, Authors(), nil, &authors)
	return authors, err
}

// AuthorRequest is the write shape for authors.
type AuthorRequest struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// CreateAuthor stores a new author. Admin token required.
func (c *Client) CreateAuthor(ctx context.Context, req AuthorRequest) (models.Author, error) {
	var author models.Author
	err := c.do(ctx, http.MethodPost, Authors(), req, &author)
	return author, err
}

// PostRequest is the write shape for posts. Zero-valued fields are omitted
// so updates carry only the fields being changed.
type PostRequest struct {
	Title      string `json:"title,omitempty"`
	Slug       string `json:"slug,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
	Content    string `json:"content,omitempty"`
	CoverImage string `json:"cover_image,omitempty"`
	AuthorID   uint   `json:"author_id,omitempty"`
	Featured   *bool  `json:"featured,omitempty"`
	Published  *bool  `json:"published,omitempty"`
	ReadTime   int    `json:"read_time,omitempty"`
	Categories []uint `json:"categories,omitempty"`
}

// CreatePost stores a new post. Admin token required.
func (c *Client) CreatePost(ctx context.Context, req PostRequest) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodPost, Posts(), req, &post)
	return post, err
}

// UpdatePost merges the given fields into the stored post. Admin token required.
func (c *Client) UpdatePost(ctx context.Context, id uint, req PostRequest) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodPut, PostByID(id), req, &post)
	return post, err
}

// DeletePost removes a post. Admin token required.
func (c *Client) DeletePost(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, PostByID(id), nil, nil)
}

// ListComments fetches every comment for moderation. Admin token required.
func (c *Client) ListComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.do(ctx, http.MethodGet, Comments(), nil, &comments)
	return comments, err
}

// ListCommentsByPost fetches the approved comments under a post.
func (c *Client) ListCommentsByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.do(ctx, http.MethodGet, CommentsByPost(postID), nil, &comments)
	return comments, err
}

// CommentRequest is the public comment submission shape.
type CommentRequest struct {
	PostID  uint   `json:"post_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

// CreateComment submits a reader comment; it will be held as pending.
func (c *Client) CreateComment(ctx context.Context, req CommentRequest) (models.Comment, error) {
	var comment models.Comment
	err := c.do(ctx, http.MethodPost, Comments(), req, &comment)
	return comment, err
}

// ApproveComment flips a comment to approved. Admin token required.
func (c *Client) ApproveComment(ctx context.Context, id uint) (models.Comment, error) {
	var comment models.Comment
	err := c.do(ctx, http.MethodPut, ApproveComment(id), nil, &comment)
	return comment, err
}

// RejectComment flips a comment to rejected. Admin token required.
func (c *Client) RejectComment(ctx context.Context, id uint) (models.Comment, error) {
	var comment models.Comment
	err := c.do(ctx, http.MethodPut, RejectComment(id), nil, &comment)
	return comment, err
}

// Subscribe signs an email up for the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	var sub models.Subscriber
	err := c.do(ctx, http.MethodPost, Subscribers(), map[string]string{"email": email}, &sub)
	return sub, err
}

// Login exchanges the admin credential pair for a session token and attaches
// it to the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, Login(), map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}
