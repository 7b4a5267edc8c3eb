package database

import (
	"github.com/Dwarak18/GPT-llama3.2/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return ErrDuplicateUser
	}
	return nil
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByLogin ищет пользователя по username или email
func (d *Database) FindUserByLogin(login string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ? OR email = ?", login, login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
