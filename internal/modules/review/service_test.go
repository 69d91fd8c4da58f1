package review

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dongne-wiki/core/internal/database"
	"github.com/dongne-wiki/core/internal/models"
	"github.com/dongne-wiki/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedDocument(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	doc := models.DocumentModel{
		Title:     "명륜피아노학원",
		CreatedBy: "작성자",
		Location:  "서울 종로구 명륜3가",
		Gu:        "종로구",
		Dong:      "명륜3가",
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc.ID
}

func TestSubmitAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db)

	first, err := svc.Submit(docID, &SubmitReviewDTO{Author: "학부모", Content: "선생님이 친절해요"})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := svc.Submit(docID, &SubmitReviewDTO{Author: "졸업생", Content: "10년 다녔습니다"})
	require.NoError(t, err)

	reviews, pg, err := svc.ListByDocument(docID, pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	// Newest first.
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
	assert.EqualValues(t, 2, pg.Total)
	assert.False(t, pg.HasNextPage)
}

func TestSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db)

	_, err := svc.Submit(docID, &SubmitReviewDTO{Author: "  ", Content: "내용"})
	assert.ErrorIs(t, err, errValidation)

	_, err = svc.Submit(docID, &SubmitReviewDTO{Author: "작성자", Content: "\n\t"})
	assert.ErrorIs(t, err, errValidation)
}

func TestSubmitMissingDocument(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.Submit(9999, &SubmitReviewDTO{Author: "작성자", Content: "내용"})
	assert.ErrorIs(t, err, errDocumentNotFound)
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db)

	for i := 0; i < 5; i++ {
		_, err := svc.Submit(docID, &SubmitReviewDTO{
			Author:  "작성자",
			Content: fmt.Sprintf("리뷰 %d", i),
		})
		require.NoError(t, err)
	}

	reviews, pg, err := svc.ListByDocument(docID, pagination.Query{Page: 1, Size: 3})
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
	assert.EqualValues(t, 5, pg.Total)
	assert.Equal(t, 2, pg.TotalPage)
	assert.True(t, pg.HasNextPage)

	rest, pg, err := svc.ListByDocument(docID, pagination.Query{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.Len(t, rest, 2)
	assert.False(t, pg.HasNextPage)
}
