package entity

// User is the single persisted entity of this service.
//
// Timestamps are microseconds since the Unix epoch, stored as BIGINT and
// returned as plain integers on the wire. UpdatedAt equals CreatedAt at
// creation time; no update path exists, so they stay equal in practice.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
