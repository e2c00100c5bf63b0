package dao

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
)

type QuestionDAO struct {
	Repo[models.Question]
}

func NewQuestionDAO(db *gorm.DB) *QuestionDAO {
	return &QuestionDAO{Repo: NewRepo[models.Question](db)}
}

func (d *QuestionDAO) Tx(tx *gorm.DB) *QuestionDAO {
	return NewQuestionDAO(tx)
}

// AuthorOf 问题作者, 不存在返回 gorm.ErrRecordNotFound
func (d *QuestionDAO) AuthorOf(ctx context.Context, questionID uint64) (uint64, error) {
	var q models.Question
	err := d.Db.WithContext(ctx).Select("id", "author_id").First(&q, questionID).Error
	return q.AuthorID, err
}

type AnswerDAO struct {
	Repo[models.Answer]
}

func NewAnswerDAO(db *gorm.DB) *AnswerDAO {
	return &AnswerDAO{Repo: NewRepo[models.Answer](db)}
}

func (d *AnswerDAO) Tx(tx *gorm.DB) *AnswerDAO {
	return NewAnswerDAO(tx)
}

// AuthorOf 回答作者, 不存在返回 gorm.ErrRecordNotFound
func (d *AnswerDAO) AuthorOf(ctx context.Context, answerID uint64) (uint64, error) {
	var a models.Answer
	err := d.Db.WithContext(ctx).Select("id", "author_id").First(&a, answerID).Error
	return a.AuthorID, err
}
