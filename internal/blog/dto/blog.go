package dto

import (
	"github.com/Nikhar-savaliya/blogsite-api/internal/blog/domain"
)

type CreateBlogInput struct {
	Title       string         `json:"title"`
	Banner      string         `json:"banner"`
	Content     domain.Content `json:"content"`
	Tags        []string       `json:"tags"`
	Description string         `json:"description"`
	Draft       bool           `json:"draft"`
	BlogID      string         `json:"blogId"`
}

type CreateBlogResponse struct {
	BlogID string `json:"blogId"`
}

type PageInput struct {
	Page int64 `json:"page"`
}

type SearchBlogInput struct {
	Tag           string `json:"tag"`
	Page          int64  `json:"page"`
	Query         string `json:"query"`
	Author        string `json:"author"`
	Limit         int64  `json:"limit"`
	EliminateBlog string `json:"eliminateBlog"`
}

type BlogListResponse struct {
	Blogs []domain.BlogPreview `json:"blogs"`
}

type TrendingListResponse struct {
	Blogs []domain.TrendingPreview `json:"blogs"`
}

type BlogCountResponse struct {
	TotalBlogsCount int64 `json:"totalBlogsCount"`
}
