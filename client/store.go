package client

import (
	"context"
	"sync"

	"github.com/openroam/travelblog/models"
)

// Store keeps a local view of posts and categories for rendering. Load
// fetches both collections from the API; when that fails the seeded fallback
// data stays in place so pages still render. Mutators are server-first: the
// API call must succeed before local state changes, so a reload always
// reflects server state.
type Store struct {
	client *Client

	mu         sync.RWMutex
	posts      []models.Post
	categories []models.Category
	fallback   bool
}

// NewStore creates a store seeded with the bundled fallback data.
func NewStore(c *Client) *Store {
	return &Store{
		client:     c,
		posts:      seedPosts(),
		categories: seedCategories(),
		fallback:   true,
	}
}

// Load fetches posts and categories from the API. On error the seeded data
// is retained and the error returned for the caller to surface.
func (s *Store) Load(ctx context.Context) error {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return err
	}
	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.posts = posts
	s.categories = categories
	s.fallback = false
	s.mu.Unlock()
	return nil
}

// UsingFallback reports whether the store is still serving seeded data.
func (s *Store) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Posts returns a snapshot of the current posts.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Categories returns a snapshot of the current categories.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// PostBySlug looks a post up in local state.
func (s *Store) PostBySlug(slug string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Post{}, false
}

// AddPost creates the post on the server, then prepends it locally.
func (s *Store) AddPost(ctx context.Context, req PostRequest) (models.Post, error) {
	post, err := s.client.CreatePost(ctx, req)
	if err != nil {
		return models.Post{}, err
	}
	s.mu.Lock()
	s.posts = append([]models.Post{post}, s.posts...)
	s.mu.Unlock()
	return post, nil
}

// UpdatePost patches the post on the server, then mirrors the result locally.
func (s *Store) UpdatePost(ctx context.Context, id uint, req PostRequest) (models.Post, error) {
	post, err := s.client.UpdatePost(ctx, id, req)
	if err != nil {
		return models.Post{}, err
	}
	s.mu.Lock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i] = post
			break
		}
	}
	s.mu.Unlock()
	return post, nil
}

// DeletePost removes the post on the server, then drops it locally.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	if err := s.client.DeletePost(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// SetCommentStatus approves or rejects a comment on the server.
func (s *Store) SetCommentStatus(ctx context.Context, id uint, status string) (models.Comment, error) {
	if status == models.CommentApproved {
		return s.client.ApproveComment(ctx, id)
	}
	return s.client.RejectComment(ctx, id)
}
