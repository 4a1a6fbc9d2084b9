package model

type Author struct {
	ID          int64    `json:"id" db:"id"`
	Name        string   `json:"nombre" db:"name"`
	Nationality string   `json:"nacionalidad" db:"nationality"`
	Books       []string `json:"libros,omitempty" db:"-"`
}

type ListAuthors struct {
	Paging `json:",inline"`
	Items  []Author `json:"items"`
}

type AuthorFilter struct {
	Name      string
	WithBooks bool
}

type CreateAuthor struct {
	Name        string `json:"nombre" validate:"required,max=100"`
	Nationality string `json:"nacionalidad" validate:"required,max=100"`
}

type UpdateAuthor struct {
	Name        *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Nationality *string `json:"nacionalidad" validate:"omitempty,min=1,max=100"`
}

func (u UpdateAuthor) Apply(a *Author) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Nationality != nil {
		a.Nationality = *u.Nationality
	}
}
