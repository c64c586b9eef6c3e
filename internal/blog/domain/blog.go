package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Activity struct {
	TotalLikes          int64 `bson:"total_likes" json:"total_likes"`
	TotalComments       int64 `bson:"total_comments" json:"total_comments"`
	TotalReads          int64 `bson:"total_reads" json:"total_reads"`
	TotalParentComments int64 `bson:"total_parent_comments" json:"total_parent_comments"`
}

// Content holds editor block data. Blocks are stored as-is; the backend only
// ever checks that a draft carries at least one.
type Content struct {
	Blocks []map[string]interface{} `bson:"blocks" json:"blocks"`
}

type Blog struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	BlogID      string               `bson:"blog_id"`
	Title       string               `bson:"title"`
	Banner      string               `bson:"banner,omitempty"`
	Description string               `bson:"description,omitempty"`
	Content     Content              `bson:"content"`
	Tags        []string             `bson:"tags"`
	Author      primitive.ObjectID   `bson:"author"`
	Activity    Activity             `bson:"activity"`
	Comments    []primitive.ObjectID `bson:"comments,omitempty"`
	Draft       bool                 `bson:"draft"`
	PublishedAt time.Time            `bson:"publishedAt"`
}

// SearchQuery selects exactly one search mode: by tag, by title substring, or
// by author id. EliminateBlog only applies to tag searches.
type SearchQuery struct {
	Tag           string
	Query         string
	Author        string
	EliminateBlog string
}
