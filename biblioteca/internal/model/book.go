package model

type BookState string

const (
	BookAvailable BookState = "disponible"
	BookOnLoan    BookState = "prestado"
)

type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"titulo" db:"title"`
	Genre           string    `json:"genero" db:"genre"`
	PublicationYear string    `json:"anyoPublicacion" db:"publication_year"`
	State           BookState `json:"estado" db:"state"`
	AuthorID        int64     `json:"autorId" db:"author_id"`
}

// BookDetail is a book together with the name of its author.
type BookDetail struct {
	Book
	AuthorName string `json:"nombreAutor" db:"author_name"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookDetail `json:"items"`
}

type BookFilter struct {
	Title string
	Genre string
}

type CreateBook struct {
	Title           string `json:"titulo" validate:"required,min=1,max=100"`
	Genre           string `json:"genero" validate:"max=50"`
	PublicationYear string `json:"anyoPublicacion" validate:"max=10"`
	AuthorID        int64  `json:"autorId" validate:"required,gte=1"`
}

type UpdateBook struct {
	Title           *string `json:"titulo" validate:"omitempty,min=1,max=100"`
	Genre           *string `json:"genero" validate:"omitempty,max=50"`
	PublicationYear *string `json:"anyoPublicacion" validate:"omitempty,max=10"`
	AuthorID        *int64  `json:"autorId" validate:"omitempty,gte=1"`
}

func (u UpdateBook) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Genre != nil {
		b.Genre = *u.Genre
	}
	if u.PublicationYear != nil {
		b.PublicationYear = *u.PublicationYear
	}
	if u.AuthorID != nil {
		b.AuthorID = *u.AuthorID
	}
}
