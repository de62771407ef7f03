package users

// User は users テーブルの1行を表す
type User struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func (u User) toDTO() UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
