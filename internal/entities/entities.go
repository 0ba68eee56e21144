package entities

// Author is a row in the authors table. ID is zero until the row is
// persisted and never changes afterwards. Logical identity is the
// (first_name, last_name) pair, enforced by the validation layer rather
// than a storage constraint.
type Author struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FirstName  string `gorm:"size:100;not null" json:"first_name"`
	LastName   string `gorm:"size:100;not null" json:"last_name"`
	MiddleName string `gorm:"size:100;not null;default:''" json:"middle_name"`
}

// Book is a row in the books table. The author column references
// authors.id with ON DELETE CASCADE; reads return the joined author
// nested under "author".
type Book struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"size:512;not null" json:"title"`
	AuthorID uint    `gorm:"column:author;not null;index" json:"-"`
	Author   *Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}
