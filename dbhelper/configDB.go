package dbhelper

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/armsplatform/apiv1/models"
	"github.com/armsplatform/apiv1/utils"
)

var DB *gorm.DB

func OpenDB() error {
	var err error
	dsn := fmt.Sprintf(
		"%s:%s@tcp(127.0.0.1:3306)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv(utils.DBUSER),
		os.Getenv(utils.DBPASS),
		os.Getenv(utils.DBNAME),
	)
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	return err
}

func InitDB() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Material{},
		&models.News{},
	)
}
