package dto

import "time"

type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	UserID        uint      `json:"id"`
	UserName      string    `json:"name"`
	UserEmail     string    `json:"email"`
	UserPhone     string    `json:"phone"`
	UserRole      int       `json:"role"`
	UserStatus    int       `json:"status"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	User        UserLoginResponse `json:"user"`
}

type ProfileResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phoneNumber"`
	Role          int     `json:"role"`
	Status        int     `json:"status"`
	LoyaltyPoints int     `json:"loyaltyPoints"`
	FavoriteRooms []int64 `json:"favoriteRooms"`
}
