package seed

import (
	"fmt"
	"time"

	"gamereviews/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory generates plausible development data on top of a base dataset.
type Factory struct {
	faker *gofakeit.Faker
	now   time.Time
	// maxDays bounds how far back generated timestamps reach.
	maxDays int
}

// NewFactory creates a Factory. A fixed seed yields reproducible data.
func NewFactory(seed int64) *Factory {
	return &Factory{
		faker:   gofakeit.New(seed),
		now:     time.Now().UTC(),
		maxDays: 365,
	}
}

// DevData extends base with extra users, reviews and comments. Generated
// reviews and comments only reference entities that exist in the result.
func (f *Factory) DevData(base Data, users, reviews, commentsPerReview int) Data {
	out := Data{
		Categories: append([]models.Category(nil), base.Categories...),
		Users:      append([]User(nil), base.Users...),
		Reviews:    append([]Review(nil), base.Reviews...),
		Comments:   append([]Comment(nil), base.Comments...),
	}

	for i := 0; i < users; i++ {
		out.Users = append(out.Users, f.User(i))
	}
	if len(out.Users) == 0 || len(out.Categories) == 0 {
		return out
	}

	for i := 0; i < reviews; i++ {
		owner := out.Users[f.faker.Number(0, len(out.Users)-1)].Username
		category := out.Categories[f.faker.Number(0, len(out.Categories)-1)].Slug
		out.Reviews = append(out.Reviews, f.Review(owner, category))

		reviewID := len(out.Reviews)
		for j := 0; j < commentsPerReview; j++ {
			author := out.Users[f.faker.Number(0, len(out.Users)-1)].Username
			out.Comments = append(out.Comments, f.Comment(reviewID, author))
		}
	}
	return out
}

// User builds a user whose password equals its username. n keeps usernames unique.
func (f *Factory) User(n int) User {
	username := fmt.Sprintf("%s%d", f.faker.Username(), n)
	return User{
		User: models.User{
			Username:  username,
			Name:      f.faker.Name(),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		},
		Password:    username,
		AccessLevel: models.AccessLevelUser,
	}
}

func (f *Factory) Review(owner, category string) Review {
	return Review{
		Title:        f.faker.Sentence(f.faker.Number(2, 6)),
		Designer:     f.faker.Name(),
		Owner:        owner,
		ReviewBody:   f.faker.Paragraph(1, 3, 12, " "),
		Category:     category,
		ReviewImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/700/700", f.faker.UUID()),
		Votes:        f.faker.Number(0, 50),
		CreatedAt:    f.pastTime(),
	}
}

func (f *Factory) Comment(reviewID int, author string) Comment {
	return Comment{
		Body:      f.faker.Sentence(f.faker.Number(4, 16)),
		ReviewID:  reviewID,
		Author:    author,
		Votes:     f.faker.Number(0, 20),
		CreatedAt: f.pastTime(),
	}
}

func (f *Factory) pastTime() time.Time {
	back := time.Duration(f.faker.Number(0, f.maxDays*24*60)) * time.Minute
	return f.now.Add(-back).Truncate(time.Second)
}
