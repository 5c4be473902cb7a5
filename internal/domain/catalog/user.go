package catalog

// User is a person that creates, likes and rates recipes. Username is unique
// and stored trimmed and lowercased.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Signup struct {
	User    User `json:"user"`
	Created bool `json:"created"`
}

type UserDeletion struct {
	UserID         string `json:"user_id"`
	DeletedRecipes int64  `json:"deleted_recipes"`
}
