package favorite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dongne-wiki/core/internal/database"
	"github.com/dongne-wiki/core/internal/models"
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

func seedDocument(t *testing.T, db *gorm.DB, title string) uint {
	t.Helper()
	doc := models.DocumentModel{
		Title:     title,
		CreatedBy: "작성자",
		Location:  "서울 종로구 명륜3가",
		Gu:        "종로구",
		Dong:      "명륜3가",
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc.ID
}

func stars(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var doc models.DocumentModel
	require.NoError(t, db.First(&doc, id).Error)
	return doc.Stars
}

func TestMarkAndUnmark(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db, "성대밥상")
	sess := newSession()

	require.NoError(t, svc.Mark(sess, docID))
	assert.True(t, sess.Has(docID))
	assert.Equal(t, 1, stars(t, db, docID))

	require.NoError(t, svc.Unmark(sess, docID))
	assert.False(t, sess.Has(docID))
	assert.Equal(t, 0, stars(t, db, docID))
}

func TestMarkIsIdempotentPerSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db, "성대밥상")
	sess := newSession()

	require.NoError(t, svc.Mark(sess, docID))
	require.NoError(t, svc.Mark(sess, docID))
	assert.Equal(t, 1, stars(t, db, docID))
}

func TestUnmarkWithoutMark(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db, "성대밥상")
	sess := newSession()

	require.NoError(t, svc.Unmark(sess, docID))
	assert.Equal(t, 0, stars(t, db, docID))
}

func TestStarsNeverGoNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	docID := seedDocument(t, db, "성대밥상")

	// Another session's unmark after the counter was reset elsewhere.
	sess := newSession()
	sess.Add(docID)
	require.NoError(t, svc.Unmark(sess, docID))
	assert.Equal(t, 0, stars(t, db, docID))
}

func TestMarkMissingDocumentRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	sess := newSession()

	err := svc.Mark(sess, 9999)
	assert.ErrorIs(t, err, errDocumentNotFound)
	assert.False(t, sess.Has(9999))
}

func TestUnmarkMissingDocumentRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	sess := newSession()
	sess.Add(9999)

	err := svc.Unmark(sess, 9999)
	assert.ErrorIs(t, err, errDocumentNotFound)
	assert.True(t, sess.Has(9999))
}

func TestListReturnsFavoritedDocuments(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	a := seedDocument(t, db, "성대밥상")
	b := seedDocument(t, db, "명륜다방")
	seedDocument(t, db, "무관한가게")

	sess := newSession()
	require.NoError(t, svc.Mark(sess, a))
	require.NoError(t, svc.Mark(sess, b))

	docs, err := svc.List(sess)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	empty, err := svc.List(newSession())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := NewStore()
	a := store.Session("device-a")
	b := store.Session("device-b")

	a.Add(1)
	assert.False(t, b.Has(1))
	assert.Same(t, a, store.Session("device-a"))

	a.SetLocality("종로구", "명륜3가")
	gu, dong := a.Locality()
	assert.Equal(t, "종로구", gu)
	assert.Equal(t, "명륜3가", dong)

	gu, dong = b.Locality()
	assert.Empty(t, gu)
	assert.Empty(t, dong)
}
