package user

// Table is the PostgreSQL table holding users.
const Table = "users"

// User is a user row. Email is unique across users.
type User struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Language  string `json:"language"`
}
