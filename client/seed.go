package client

import (
	"time"

	"github.com/openroam/travelblog/models"
)

// Seeded fallback content so pages render before the API is reachable.

func seedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Adventure", Slug: "adventure", Description: "Thrilling activities and daring escapades from around the world", Count: 2},
		{ID: 2, Name: "Asia", Slug: "asia", Description: "Explore the diverse cultures and landscapes of Asia", Count: 2},
		{ID: 3, Name: "Budget", Slug: "budget", Description: "Tips and guides for traveling on a budget", Count: 1},
		{ID: 4, Name: "Europe", Slug: "europe", Description: "Discover the charm and history of European destinations", Count: 1},
		{ID: 5, Name: "Food", Slug: "food", Description: "Culinary journeys and gastronomic delights from across the globe", Count: 1},
	}
}

func seedPosts() []models.Post {
	now := time.Now()
	sophie := models.Author{ID: 1, Name: "Sophie Chen", Avatar: "/placeholder.svg", Bio: "Travel writer covering Southeast Asia"}
	marco := models.Author{ID: 2, Name: "Marco Rossi", Avatar: "/placeholder.svg", Bio: "Budget backpacker and photographer"}

	return []models.Post{
		{
			ID:         1,
			Title:      "Top 10 Must-Visit Destinations in Southeast Asia",
			Slug:       "top-10-must-visit-destinations-in-southeast-asia",
			Excerpt:    "From the temples of Angkor to the beaches of Bali, these are the places worth the long-haul flight.",
			Content:    "<p>Southeast Asia rewards slow travel...</p>",
			CoverImage: "/placeholder.svg",
			AuthorID:   sophie.ID,
			Author:     sophie,
			Featured:   true,
			Published:  true,
			ReadTime:   8,
			CreatedAt:  now.Add(-48 * time.Hour),
			Categories: []models.Category{
				{ID: 1, Name: "Adventure", Slug: "adventure"},
				{ID: 2, Name: "Asia", Slug: "asia"},
			},
		},
		{
			ID:         2,
			Title:      "A Foodie's Guide to Japanese Cuisine",
			Slug:       "a-foodies-guide-to-japanese-cuisine",
			Excerpt:    "Ramen, kaiseki and everything in between: eating your way through Japan.",
			Content:    "<p>Start with the markets...</p>",
			CoverImage: "/placeholder.svg",
			AuthorID:   sophie.ID,
			Author:     sophie,
			Published:  true,
			ReadTime:   6,
			CreatedAt:  now.Add(-96 * time.Hour),
			Categories: []models.Category{
				{ID: 2, Name: "Asia", Slug: "asia"},
				{ID: 5, Name: "Food", Slug: "food"},
			},
		},
		{
			ID:         3,
			Title:      "Backpacking Through Europe on 50 Euros a Day",
			Slug:       "backpacking-through-europe-on-50-euros-a-day",
			Excerpt:    "Hostels, rail passes and free walking tours: a realistic budget for a month on the road.",
			Content:    "<p>It is still possible...</p>",
			CoverImage: "/placeholder.svg",
			AuthorID:   marco.ID,
			Author:     marco,
			Published:  true,
			ReadTime:   10,
			CreatedAt:  now.Add(-150 * time.Hour),
			Categories: []models.Category{
				{ID: 3, Name: "Budget", Slug: "budget"},
				{ID: 4, Name: "Europe", Slug: "europe"},
			},
		},
	}
}
