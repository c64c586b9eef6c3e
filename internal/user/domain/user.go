package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PersonalInfo struct {
	Fullname   string `bson:"fullname"`
	Email      string `bson:"email"`
	Password   string `bson:"password"`
	Username   string `bson:"username"`
	Bio        string `bson:"bio,omitempty"`
	ProfileImg string `bson:"profile_img,omitempty"`
}

type SocialLinks struct {
	Youtube   string `bson:"youtube,omitempty"`
	Instagram string `bson:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty"`
	Github    string `bson:"github,omitempty"`
	Website   string `bson:"website,omitempty"`
}

type AccountInfo struct {
	TotalPosts int64 `bson:"total_posts"`
	TotalReads int64 `bson:"total_reads"`
}

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	PersonalInfo PersonalInfo         `bson:"personal_info"`
	SocialLinks  SocialLinks          `bson:"social_links"`
	AccountInfo  AccountInfo          `bson:"account_info"`
	Blogs        []primitive.ObjectID `bson:"blogs"`
	JoinedAt     time.Time            `bson:"joinedAt"`
}
