package controllers

import (
	"strings"

	"hotel/config"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		UserPhone:     user.PhoneNumber,
		UserRole:      user.Role,
		UserStatus:    user.Status,
		LoyaltyPoints: user.LoyaltyPoints,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(models.User{
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"phoneNumber": user.PhoneNumber,
	})
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.ProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role,
		Status:        user.Status,
		LoyaltyPoints: user.LoyaltyPoints,
		FavoriteRooms: user.FavoriteRooms,
	})
}
