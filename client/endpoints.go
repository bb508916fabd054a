package client

import (
	"fmt"
	"net/url"
)

// Typed endpoint path builders mirroring the API surface.

func Posts() string                  { return "/api/posts" }
func PostByID(id uint) string        { return fmt.Sprintf("/api/posts/%d", id) }
func PostBySlug(slug string) string  { return "/api/posts/slug/" + url.PathEscape(slug) }
func FeaturedPosts() string          { return "/api/posts/featured" }
func RecentPosts() string            { return "/api/posts/recent" }
func PostsByCategory(s string) string { return "/api/posts/category/" + url.PathEscape(s) }
func RelatedPosts(id uint) string    { return fmt.Sprintf("/api/posts/%d/related", id) }
func SearchPosts(q string) string    { return "/api/posts/search?q=" + url.QueryEscape(q) }

func Categories() string                { return "/api/categories" }
func CategoryBySlug(slug string) string { return "/api/categories/slug/" + url.PathEscape(slug) }
func CategoryByID(id uint) string       { return fmt.Sprintf("/api/categories/%d", id) }

func Authors() string           { return "/api/authors" }
func AuthorByID(id uint) string { return fmt.Sprintf("/api/authors/%d", id) }

func Comments() string                 { return "/api/comments" }
func CommentsByPost(postID uint) string { return fmt.Sprintf("/api/comments/post/%d", postID) }
func CommentByID(id uint) string       { return fmt.Sprintf("/api/comments/%d", id) }
func ApproveComment(id uint) string    { return fmt.Sprintf("/api/comments/approve/%d", id) }
func RejectComment(id uint) string     { return fmt.Sprintf("/api/comments/reject/%d", id) }

func Subscribers() string           { return "/api/subscribers" }
func SubscriberByID(id uint) string { return fmt.Sprintf("/api/subscribers/%d", id) }

func Uploads() string { return "/api/uploads" }
func Login() string   { return "/api/auth/login" }
func Logout() string  { return "/api/auth/logout" }
func Stats() string   { return "/api/stats" }
