package domain

import "time"

// AuthorPreview is the slice of the author document that feed and search
// results carry alongside each blog.
type AuthorPreview struct {
	PersonalInfo AuthorPersonalInfo `bson:"personal_info" json:"personal_info"`
}

type AuthorPersonalInfo struct {
	Fullname   string `bson:"fullname" json:"fullname"`
	Username   string `bson:"username" json:"username"`
	ProfileImg string `bson:"profile_img" json:"profile_img"`
}

type BlogPreview struct {
	BlogID      string        `bson:"blog_id" json:"blog_id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Banner      string        `bson:"banner,omitempty" json:"banner,omitempty"`
	Activity    Activity      `bson:"activity" json:"activity"`
	Tags        []string      `bson:"tags" json:"tags"`
	PublishedAt time.Time     `bson:"publishedAt" json:"publishedAt"`
	Author      AuthorPreview `bson:"author" json:"author"`
}

type TrendingPreview struct {
	BlogID      string        `bson:"blog_id" json:"blog_id"`
	Title       string        `bson:"title" json:"title"`
	PublishedAt time.Time     `bson:"publishedAt" json:"publishedAt"`
	Author      AuthorPreview `bson:"author" json:"author"`
}
