package model

type Entity string

const (
	EntityBook Entity = "book"
	EntityUser Entity = "user"
)

type Book struct {
	ISBN     string   `json:"isbn" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Pages    int      `json:"pages" validate:"gt=0"`
	Quantity int      `json:"quantity" validate:"gte=0"`
	Authors  []string `json:"authors" validate:"dive,required"`
}

type User struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    int    `json:"phone" validate:"gt=0"`
}

// BookAuthor is one (book, author) pair as returned by find and sort.
// A book linked to several authors yields one pair per author.
type BookAuthor struct {
	Book   Book   `json:"book"`
	Author string `json:"author"`
}

// BookBorrower is one user currently holding copies of a book.
type BookBorrower struct {
	User  User `json:"user"`
	Count int  `json:"count"`
}

// BorrowedBook is one book currently held by a user.
type BorrowedBook struct {
	Book  Book `json:"book"`
	Count int  `json:"count"`
}

type Rating struct {
	Username string `json:"username" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
	Score    int    `json:"score" validate:"gte=1,lte=5"`
}

type CheckoutRequest struct {
	ISBN     string `json:"isbn" validate:"required"`
	Username string `json:"username" validate:"required"`
}
