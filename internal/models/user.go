package models

// User はユーザーのデータベース構造体を表します。
// Password にはbcryptのハッシュが入り、/user-details ではそのまま返されます。
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRegisterRequest はユーザー登録リクエストの構造体です。
type UserRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"` // 生パスワード
}

// UserUpdateRequest は name/email/password をすべて上書きします。
type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// JWTClaims はトークンから取り出したユーザー情報です。
type JWTClaims struct {
	UserID string `json:"id"`
}
