package repository

import (
	"quiz_api_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

func (r *AnswerRepository) Create(a *model.Answer) error {
	return r.DB.Create(a).Error
}

func (r *AnswerRepository) FindByID(id uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AnswerRepository) FindBySessionAndQuestion(sessionID, questionID uint) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.Where("quiz_session_id = ? AND question_id = ?", sessionID, questionID).First(&a).Error
	return &a, err
}

// ListBySession 按登记顺序返回。
func (r *AnswerRepository) ListBySession(sessionID uint, skip, limit int) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("quiz_session_id = ?", sessionID).
		Order("id asc").Offset(skip).Limit(limit).Find(&as).Error
	return as, err
}

func (r *AnswerRepository) ListAllBySession(sessionID uint) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("quiz_session_id = ?", sessionID).Order("id asc").Find(&as).Error
	return as, err
}

func (r *AnswerRepository) ListByQuestionIDs(questionIDs []uint) ([]model.Answer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var as []model.Answer
	err := r.DB.Where("question_id IN ?", questionIDs).Order("id asc").Find(&as).Error
	return as, err
}

func (r *AnswerRepository) Update(a *model.Answer) error {
	return r.DB.Save(a).Error
}
