package domain

//go:generate mockgen -destination=../../../mocks/mock_blog_repository.go -package=mocks github.com/Nikhar-savaliya/blogsite-api/internal/blog/domain BlogRepository,AuthorUpdater

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogRepository interface {
	Insert(ctx context.Context, blog *Blog) error
	UpdateByBlogID(ctx context.Context, blogID string, blog *Blog) error
	FindLatest(ctx context.Context, skip, limit int64) ([]BlogPreview, error)
	CountPublished(ctx context.Context) (int64, error)
	FindTrending(ctx context.Context, limit int64) ([]TrendingPreview, error)
	Search(ctx context.Context, q SearchQuery, skip, limit int64) ([]BlogPreview, error)
	CountSearch(ctx context.Context, q SearchQuery) (int64, error)
}

// AuthorUpdater records a freshly published blog against its author's
// account info. Implemented by the user store.
type AuthorUpdater interface {
	RecordBlogPublished(ctx context.Context, authorID, blogRef primitive.ObjectID) error
}
