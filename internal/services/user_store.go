package services

import "github.com/Dwarak18/GPT-llama3.2/internal/models"

type UserStore interface {
	SaveUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	FindUserByLogin(login string) (*models.User, error)
}
