package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{
		BaseModel: models.BaseModel{ID: id},
	}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func NewAccount(name, nick, email, password string) (models.Account, error) {
	var account models.Account

	email = strings.ToLower(strings.TrimSpace(email))
	var count int64
	if err := database.C.Model(&models.Account{}).
		Where("LOWER(email) = ? OR name = ?", email, name).
		Count(&count).Error; err != nil {
		return account, err
	} else if count > 0 {
		return account, fmt.Errorf("account with the same name or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, err
	}

	account = models.Account{
		Name:         name,
		Nick:         nick,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

func AuthAccount(email, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&account).Error; err != nil {
		return account, fmt.Errorf("account was not found: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}

func EncodeJwt(account models.Account) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", account.ID),
		Issuer:    "chatter",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func DecodeJwt(token string) (uint, error) {
	var claims jwt.RegisteredClaims
	tk, err := jwt.ParseWithClaims(token, &claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil {
		return 0, err
	} else if !tk.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	var id uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil {
		return 0, fmt.Errorf("malformed token subject: %v", err)
	}

	return id, nil
}
