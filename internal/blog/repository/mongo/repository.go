package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nikhar-savaliya/blogsite-api/internal/blog/domain"
)

const (
	blogsCollection = "blogs"
	usersCollection = "users"
)

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

func (r *BlogRepository) Insert(ctx context.Context, blog *domain.Blog) error {
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, blog); err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}

	return nil
}

func (r *BlogRepository) UpdateByBlogID(ctx context.Context, blogID string, blog *domain.Blog) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"blog_id": blogID},
		bson.M{"$set": bson.M{
			"title":       blog.Title,
			"description": blog.Description,
			"banner":      blog.Banner,
			"content":     blog.Content,
			"tags":        blog.Tags,
			"draft":       blog.Draft,
		}})
	if err != nil {
		return fmt.Errorf("failed to update blog %s: %w", blogID, err)
	}

	return nil
}

func (r *BlogRepository) FindLatest(ctx context.Context, skip, limit int64) ([]domain.BlogPreview, error) {
	pipeline := previewPipeline(bson.M{"draft": false},
		bson.D{{Key: "publishedAt", Value: -1}},
		skip, limit)

	return r.aggregatePreviews(ctx, pipeline)
}

func (r *BlogRepository) CountPublished(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"draft": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count published blogs: %w", err)
	}

	return count, nil
}

func (r *BlogRepository) FindTrending(ctx context.Context, limit int64) ([]domain.TrendingPreview, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"draft": false}}},
	}
	pipeline = append(pipeline, authorLookupStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "activity.total_reads", Value: -1},
			{Key: "activity.total_likes", Value: -1},
			{Key: "publishedAt", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to find trending blogs: %w", err)
	}

	var blogs []domain.TrendingPreview
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode trending blogs: %w", err)
	}

	return blogs, nil
}

func (r *BlogRepository) Search(ctx context.Context, q domain.SearchQuery, skip, limit int64) ([]domain.BlogPreview, error) {
	filter, err := searchFilter(q)
	if err != nil {
		return nil, err
	}

	pipeline := previewPipeline(filter,
		bson.D{{Key: "publishedAt", Value: -1}},
		skip, limit)

	return r.aggregatePreviews(ctx, pipeline)
}

func (r *BlogRepository) CountSearch(ctx context.Context, q domain.SearchQuery) (int64, error) {
	filter, err := searchFilter(q)
	if err != nil {
		return 0, err
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}

	return count, nil
}

func (r *BlogRepository) aggregatePreviews(ctx context.Context, pipeline mongo.Pipeline) ([]domain.BlogPreview, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}

	var blogs []domain.BlogPreview
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}

	return blogs, nil
}

// previewPipeline matches, populates the author, then sorts and paginates.
func previewPipeline(filter bson.M, sort bson.D, skip, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	pipeline = append(pipeline, authorLookupStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: sort}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	return pipeline
}

func authorLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "author",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: "$author"}},
	}
}

// searchFilter builds the find filter for one of the three search modes. All
// modes exclude drafts.
func searchFilter(q domain.SearchQuery) (bson.M, error) {
	switch {
	case q.Tag != "":
		return bson.M{
			"tags":    q.Tag,
			"draft":   false,
			"blog_id": bson.M{"$ne": q.EliminateBlog},
		}, nil
	case q.Query != "":
		return bson.M{
			"title": primitive.Regex{Pattern: q.Query, Options: "i"},
			"draft": false,
		}, nil
	case q.Author != "":
		author, err := primitive.ObjectIDFromHex(q.Author)
		if err != nil {
			return nil, fmt.Errorf("invalid author id %q: %w", q.Author, err)
		}
		return bson.M{"author": author, "draft": false}, nil
	default:
		return bson.M{"draft": false}, nil
	}
}
