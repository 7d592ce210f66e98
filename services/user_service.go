package services

import (
	"fmt"

	"hotel/config"
	"hotel/errors"
	"hotel/models"
	"hotel/validator"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errors.ErrUserNotFound
	}
	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	if err := config.DB.Where("phone_number = ?", phoneNumber).First(&user).Error; err != nil {
		return models.User{}, errors.ErrUserNotFound
	}
	return user, nil
}

func CreateUser(input models.User) (models.User, error) {
	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("số điện thoại %s đã được sử dụng", existingPhone.PhoneNumber)
	}

	rawPassword := input.Password
	hashedPassword, err := HashPassword(rawPassword)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		Name:        input.Name,
	}

	if result := config.DB.Create(&user); result.Error != nil {
		return user, result.Error
	}

	if err := SendUserEmail(user.Email, user.PhoneNumber, rawPassword); err != nil {
		svcLogger.Error("Gửi mail tài khoản mới thất bại cho %s: %v", user.Email, err)
	}

	return user, nil
}
