package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Nikhar-savaliya/blogsite-api/internal/blog/domain"
	"github.com/Nikhar-savaliya/blogsite-api/internal/blog/dto"
	apperror "github.com/Nikhar-savaliya/blogsite-api/internal/errors"
)

const (
	feedPageSize     = 3
	trendingFeedSize = 5
	blogIDSuffixLen  = 8
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

type BlogService struct {
	repo    domain.BlogRepository
	authors domain.AuthorUpdater
	logger  *slog.Logger
}

func NewBlogService(repo domain.BlogRepository, authors domain.AuthorUpdater, logger *slog.Logger) *BlogService {
	return &BlogService{
		repo:    repo,
		authors: authors,
		logger:  logger,
	}
}

// GenerateBlogID slugifies the title and appends a random 8-character suffix
// so that equal titles still yield distinct ids.
func GenerateBlogID(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(title, " ")
	slug = whitespaceRuns.ReplaceAllString(strings.TrimSpace(slug), "-")

	return slug + "-" + uuid.NewString()[:blogIDSuffixLen]
}

// CreateOrUpdate updates an existing blog in place when the input carries a
// blog id, and inserts a new one otherwise. A fresh non-draft insert also
// bumps the author's published-post counters.
func (s *BlogService) CreateOrUpdate(ctx context.Context, authorID string, input dto.CreateBlogInput) (*dto.CreateBlogResponse, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	if input.BlogID != "" {
		blog := &domain.Blog{
			Title:       input.Title,
			Description: input.Description,
			Banner:      input.Banner,
			Content:     input.Content,
			Tags:        input.Tags,
			Draft:       input.Draft,
		}
		if err := s.repo.UpdateByBlogID(ctx, input.BlogID, blog); err != nil {
			return nil, err
		}

		return &dto.CreateBlogResponse{BlogID: input.BlogID}, nil
	}

	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id %q: %w", authorID, err)
	}

	blog := &domain.Blog{
		ID:          primitive.NewObjectID(),
		BlogID:      GenerateBlogID(input.Title),
		Title:       input.Title,
		Description: input.Description,
		Banner:      input.Banner,
		Content:     input.Content,
		Tags:        input.Tags,
		Author:      author,
		Draft:       input.Draft,
		PublishedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, blog); err != nil {
		return nil, err
	}

	if !input.Draft {
		if err := s.authors.RecordBlogPublished(ctx, author, blog.ID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("blog stored", "blog_id", blog.BlogID, "draft", blog.Draft)

	return &dto.CreateBlogResponse{BlogID: blog.BlogID}, nil
}

func (s *BlogService) Latest(ctx context.Context, page int64) (*dto.BlogListResponse, error) {
	if page < 1 {
		page = 1
	}

	blogs, err := s.repo.FindLatest(ctx, (page-1)*feedPageSize, feedPageSize)
	if err != nil {
		return nil, err
	}

	return &dto.BlogListResponse{Blogs: blogs}, nil
}

func (s *BlogService) CountPublished(ctx context.Context) (*dto.BlogCountResponse, error) {
	count, err := s.repo.CountPublished(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.BlogCountResponse{TotalBlogsCount: count}, nil
}

func (s *BlogService) Trending(ctx context.Context) (*dto.TrendingListResponse, error) {
	blogs, err := s.repo.FindTrending(ctx, trendingFeedSize)
	if err != nil {
		return nil, err
	}

	return &dto.TrendingListResponse{Blogs: blogs}, nil
}

func (s *BlogService) Search(ctx context.Context, input dto.SearchBlogInput) (*dto.BlogListResponse, error) {
	limit := input.Limit
	if limit < 1 {
		limit = feedPageSize
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	blogs, err := s.repo.Search(ctx, searchQuery(input), (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &dto.BlogListResponse{Blogs: blogs}, nil
}

func (s *BlogService) SearchCount(ctx context.Context, input dto.SearchBlogInput) (*dto.BlogCountResponse, error) {
	count, err := s.repo.CountSearch(ctx, searchQuery(input))
	if err != nil {
		return nil, err
	}

	return &dto.BlogCountResponse{TotalBlogsCount: count}, nil
}

func searchQuery(input dto.SearchBlogInput) domain.SearchQuery {
	return domain.SearchQuery{
		Tag:           input.Tag,
		Query:         input.Query,
		Author:        input.Author,
		EliminateBlog: input.EliminateBlog,
	}
}

func validateBlogInput(input dto.CreateBlogInput) error {
	if input.Title == "" {
		return apperror.ErrTitleRequired
	}

	// Field requirements are tied to drafts, mirroring the platform's save
	// flow: the editor always saves a draft first, so a draft must already be
	// complete before it can be published.
	if input.Draft {
		if input.Description == "" {
			return apperror.ErrDescRequired
		}
		if input.Banner == "" {
			return apperror.ErrBannerRequired
		}
		if len(input.Content.Blocks) == 0 {
			return apperror.ErrContentRequired
		}
		if len(input.Tags) == 0 {
			return apperror.ErrTagsRequired
		}
	}

	return nil
}
