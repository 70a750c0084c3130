package domain

import "time"

// Comment is an immutable entry in a post's comment list. Comments are
// append-only; there is no edit or per-comment delete.
type Comment struct {
	UserID    string    `json:"user_id" bson:"user_id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Post is a feed entry. Likes behave as a set of user ids toggled by the
// like endpoint.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Author    string    `json:"author" bson:"author"`
	Content   string    `json:"content" bson:"content"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Likes     []string  `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
