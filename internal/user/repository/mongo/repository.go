package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nikhar-savaliya/blogsite-api/internal/user/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// GetByEmail returns the user owning the given email, or (nil, nil) when no
// such user exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	err := r.coll.FindOne(ctx, bson.M{"personal_info.email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx,
		bson.M{"personal_info.username": username},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// RecordBlogPublished bumps the author's published-post counter and links the
// blog document into their profile.
func (r *UserRepository) RecordBlogPublished(ctx context.Context, authorID, blogRef primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": authorID},
		bson.M{
			"$inc":  bson.M{"account_info.total_posts": 1},
			"$push": bson.M{"blogs": blogRef},
		})
	if err != nil {
		return fmt.Errorf("failed to record published blog: %w", err)
	}

	return nil
}

// EnsureIndexes creates the unique email index. The index is the actual
// race-safety backstop for concurrent registrations with the same email.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "personal_info.email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}
