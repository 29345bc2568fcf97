package movie

// Table is the PostgreSQL table holding movies.
const Table = "movies"

// Movie is a movie row.
//
// Color is a flag stored as "0" (black and white) or "1" (color).
// Duration is in minutes.
type Movie struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     string `json:"year"`
	Color    string `json:"color"`
	Duration int    `json:"duration"`
}
