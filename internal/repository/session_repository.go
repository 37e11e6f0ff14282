package repository

import (
	"quiz_api_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *model.QuizSession) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.QuizSession, error) {
	var s model.QuizSession
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *SessionRepository) List(skip, limit int) ([]model.QuizSession, error) {
	var ss []model.QuizSession
	err := r.DB.Order("id asc").Offset(skip).Limit(limit).Find(&ss).Error
	return ss, err
}

func (r *SessionRepository) ListByEstado(estado string) ([]model.QuizSession, error) {
	var ss []model.QuizSession
	err := r.DB.Where("estado = ?", estado).Order("id asc").Find(&ss).Error
	return ss, err
}

func (r *SessionRepository) Update(s *model.QuizSession) error {
	return r.DB.Save(s).Error
}

// Delete 硬删除会话并级联删除其全部答题记录，单事务内完成。
func (r *SessionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_session_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizSession{}, id).Error
	})
}
