package schemas

// One message per failure mode of the pipelines.
const (
	msgFirstNameEmpty      = "first_name must be a non-empty string"
	msgLastNameEmpty       = "last_name must be a non-empty string"
	msgTitleEmpty          = "title must be a non-empty string"
	msgDuplicateAuthor     = "an author with this first_name and last_name is already registered"
	msgDuplicateTitle      = "a book with this title already exists"
	msgAuthorRequired      = "author is required"
	msgInvalidAuthorType   = "author must be an integer author id or an object with first_name and last_name"
	msgMissingAuthorFields = "author object must include first_name and last_name"
	msgAuthorNotRegistered = "no author with this first_name and last_name; register the author first"
)
