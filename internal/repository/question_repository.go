package repository

import (
	"quiz_api_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionFilter 列表查询条件。IsActive 为空时默认只取启用题目。
type QuestionFilter struct {
	Categoria  string
	Dificultad string
	IsActive   *bool
	Skip       int
	Limit      int
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

// CreateBatch 单事务写入，任一失败全部回滚。
func (r *QuestionRepository) CreateBatch(qs []*model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, q := range qs {
			if err := tx.Create(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) List(filter QuestionFilter) ([]model.Question, error) {
	var qs []model.Question
	query := r.DB.Model(&model.Question{})

	active := true
	if filter.IsActive != nil {
		active = *filter.IsActive
	}
	query = query.Where("is_active = ?", active)

	if filter.Categoria != "" {
		query = query.Where("categoria = ?", filter.Categoria)
	}
	if filter.Dificultad != "" {
		query = query.Where("dificultad = ?", filter.Dificultad)
	}

	err := query.Order("id asc").Offset(filter.Skip).Limit(filter.Limit).Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) ListActive() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("is_active = ?", true).Order("id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) ListActiveByCategoria(categoria string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("categoria = ? AND is_active = ?", categoria, true).Order("id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) CountActive() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Question{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

// ActiveCategories 启用题目出现过的分类，按题目插入顺序首次出现排序。
func (r *QuestionRepository) ActiveCategories() ([]string, error) {
	var categorias []string
	err := r.DB.Model(&model.Question{}).
		Where("is_active = ?", true).
		Group("categoria").
		Order("min(id) asc").
		Pluck("categoria", &categorias).Error
	return categorias, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

// SoftDelete 只翻转 is_active，保留行以维持答题记录的引用完整性。
func (r *QuestionRepository) SoftDelete(id uint) error {
	return r.DB.Model(&model.Question{}).Where("id = ?", id).Update("is_active", false).Error
}

// HardDelete 物理删除题目并级联删除其答题记录。
func (r *QuestionRepository) HardDelete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
