package dbhelper

import (
	"errors"

	"gorm.io/gorm"

	"github.com/armsplatform/apiv1/models"
)

func ListCourses() ([]models.Course, error) {
	var courses []models.Course
	result := DB.Order("code").Find(&courses)
	return courses, result.Error
}

func GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	result := DB.First(&course, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &course, nil
}

func CreateCourse(course *models.Course) error {
	return DB.Create(course).Error
}

func DeleteCourse(id uint) error {
	return DB.Delete(&models.Course{}, id).Error
}

func ListMaterials(courseID uint) ([]models.Material, error) {
	var materials []models.Material
	query := DB.Order("created_at DESC")
	if courseID != 0 {
		query = query.Where("course_id = ?", courseID)
	}
	result := query.Find(&materials)
	return materials, result.Error
}

func GetMaterial(id uint) (*models.Material, error) {
	var material models.Material
	result := DB.First(&material, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &material, nil
}

func CreateMaterial(material *models.Material) error {
	return DB.Create(material).Error
}

func DeleteMaterial(id uint) error {
	return DB.Delete(&models.Material{}, id).Error
}

func ListNews() ([]models.News, error) {
	var news []models.News
	result := DB.Order("created_at DESC").Find(&news)
	return news, result.Error
}

func GetNews(id uint) (*models.News, error) {
	var item models.News
	result := DB.First(&item, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func CreateNews(item *models.News) error {
	return DB.Create(item).Error
}

func UpdateNews(item *models.News) error {
	return DB.Save(item).Error
}

func DeleteNews(id uint) error {
	return DB.Delete(&models.News{}, id).Error
}
