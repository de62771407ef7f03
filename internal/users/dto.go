package users

// ===== Requests =====

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// 部分更新。nil のフィールドは変更しない
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ===== Responses =====

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
