package seed

import (
	"time"

	"gamereviews/internal/models"
)

// User is a seed user with a plaintext password that is hashed on insert.
type User struct {
	models.User
	Password    string
	AccessLevel string
}

// Review is a seed review with explicit votes and timestamp. Rows are
// inserted in order, so the n-th review receives review_id n on a fresh schema.
type Review struct {
	Title        string
	Designer     string
	Owner        string
	ReviewBody   string
	Category     string
	ReviewImgURL string
	Votes        int
	CreatedAt    time.Time
}

// Comment is a seed comment referencing a review by its position-derived id.
type Comment struct {
	Body      string
	ReviewID  int
	Author    string
	Votes     int
	CreatedAt time.Time
}

// Data is a complete dataset.
type Data struct {
	Categories []models.Category
	Users      []User
	Reviews    []Review
	Comments   []Comment
}

func ms(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

const loremBody = "Fugiat fugiat enim officia laborum quis. Aliquip laboris non nulla nostrud magna exercitation in ullamco aute laborum cillum nisi sint. Culpa excepteur aute cillum minim magna fugiat culpa adipisicing eiusmod laborum ipsum fugiat quis. Mollit consectetur amet sunt ex amet tempor magna consequat dolore cillum adipisicing. Proident est sunt amet ipsum magna proident fugiat deserunt mollit officia magna ea pariatur. Ullamco proident in nostrud pariatur. Minim consequat pariatur id pariatur adipisicing."

// TestData returns the canonical fixed dataset. Every user's password equals their username.
func TestData() Data {
	users := []User{
		{User: models.User{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"}},
		{User: models.User{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"}},
		{User: models.User{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"}},
		{User: models.User{Username: "dav3rid", Name: "dave", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"}},
	}
	for i := range users {
		users[i].Password = users[i].Username
		users[i].AccessLevel = models.AccessLevelUser
	}

	return Data{
		Categories: []models.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		Users: users,
		Reviews: []Review{
			{Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire", ReviewBody: "Farmyard fun!", Category: "euro game",
				ReviewImgURL: "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700", Votes: 1, CreatedAt: ms(1610964020514)},
			{Title: "Jenga", Designer: "Leslie Scott", Owner: "philippaclaire9", ReviewBody: "Fiddly fun for all the family", Category: "dexterity",
				ReviewImgURL: "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700", Votes: 5, CreatedAt: ms(1610964101251)},
			{Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface", ReviewBody: "We couldn't find the werewolf!", Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700", Votes: 5, CreatedAt: ms(1610964101251)},
			{Title: "Dolor reprehenderit", Designer: "Gamey McGameface", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/278888/pexels-photo-278888.jpeg?w=700&h=700", Votes: 7, CreatedAt: ms(1611315350936)},
			{Title: "Proident tempor et.", Designer: "Seymour Buttz", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700", Votes: 5, CreatedAt: ms(1610010368077)},
			{Title: "Occaecat consequat officia in quis commodo.", Designer: "Ollie Tabooger", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/207924/pexels-photo-207924.jpeg?w=700&h=700", Votes: 8, CreatedAt: ms(1600010368077)},
			{Title: "Mollit elit qui incididunt veniam occaecat cupidatat", Designer: "Avery Wunzboogerz", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/776657/pexels-photo-776657.jpeg?w=700&h=700", Votes: 9, CreatedAt: ms(1611377339280)},
			{Title: "One Night Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "mallionaire", ReviewBody: "We couldn't find the werewolf!", Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700", Votes: 5, CreatedAt: ms(1610964101251)},
			{Title: "A truly Quacking Game; Quacks of Quedlinburg", Designer: "Wolfgang Warsch", Owner: "mallionaire", ReviewBody: "Ever wish you could buy a magic potion?", Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/545010/pexels-photo-545010.jpeg?w=700&h=700", Votes: 10, CreatedAt: ms(1610964101251)},
			{Title: "Build you own tour de Yorkshire", Designer: "Asger Harding Granerud", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/258811/pexels-photo-258811.jpeg?w=700&h=700", Votes: 10, CreatedAt: ms(1610010368077)},
			{Title: "That's just what an evil person would say!", Designer: "Fiona Lohoar", Owner: "mallionaire", ReviewBody: loremBody, Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/220057/pexels-photo-220057.jpeg?w=700&h=700", Votes: 8, CreatedAt: ms(1610964101251)},
			{Title: "Scythe; you're gonna need a bigger table!", Designer: "Jamey Stegmaier", Owner: "mallionaire", ReviewBody: "Spend 30 minutes just setting up all of the pieces.", Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/4200740/pexels-photo-4200740.jpeg?w=700&h=700", Votes: 100, CreatedAt: ms(1611315350936)},
			{Title: "Settlers of Catan: Don't Settle For Less", Designer: "Klaus Teuber", Owner: "mallionaire", ReviewBody: "You have stumbled across an uncharted island rich in natural resources.", Category: "social deduction",
				ReviewImgURL: "https://images.pexels.com/photos/1153929/pexels-photo-1153929.jpeg?w=700&h=700", Votes: 16, CreatedAt: ms(788918400000)},
		},
		Comments: []Comment{
			{Body: "I loved this game too!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ms(1511354613389)},
			{Body: "My dog loved this game too!", Votes: 13, Author: "mallionaire", ReviewID: 3, CreatedAt: ms(1610964545410)},
			{Body: "I didn't know dogs could play games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ms(1610964588110)},
			{Body: "EPIC board game!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ms(1511354163389)},
			{Body: "Now this is a story all about how, board games turned my life upside down", Votes: 13, Author: "mallionaire", ReviewID: 2, CreatedAt: ms(1610965445410)},
			{Body: "Not sure about dogs, but my cat likes to get involved with board games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ms(1616874588110)},
		},
	}
}
