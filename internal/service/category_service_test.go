package service

import (
	"testing"

	"go-resto-backoffice/internal/jobs"
	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCategoryFixture(t *testing.T) (CategoryService, *fakeDispatcher, *gorm.DB) {
	db := newTestDB(t)
	dispatcher := &fakeDispatcher{}
	svc := NewCategoryService(
		repository.NewCategoryRepo(db),
		repository.NewActivityLogRepo(db),
		dispatcher,
		newTestHub(),
	)
	return svc, dispatcher, db
}

func TestCreateCategory_Success(t *testing.T) {
	svc, dispatcher, db := newCategoryFixture(t)
	userID := uuid.New()

	category, fieldErrs, err := svc.Create(&CategoryRequest{Nama: "Minuman", Deskripsi: "Segala minuman"}, &userID)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, category)

	// Tepat satu baris baru dengan nama itu
	var count int64
	db.Model(&model.Category{}).Where("name = ?", "Minuman").Count(&count)
	assert.EqualValues(t, 1, count)

	// Notifikasi store terkirim ke queue
	call := dispatcher.lastCall(t)
	assert.Equal(t, jobs.ActionStore, call.action)
	assert.Equal(t, jobs.EntityKategori, call.entity)
	assert.Equal(t, []string{"Minuman"}, call.names)

	// Tepat satu baris audit, teratribusi ke user yang bertindak
	var logs []model.ActivityLog
	db.Find(&logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "menambah kategori baru Minuman", logs[0].Action)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, userID, *logs[0].UserID)
}

func TestCreateCategory_BlankNameRejected(t *testing.T) {
	svc, dispatcher, db := newCategoryFixture(t)

	_, fieldErrs, err := svc.Create(&CategoryRequest{Nama: ""}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nama wajib diisi.", fieldErrs["nama"])

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.Zero(t, count, "no row may be persisted on validation failure")
	assert.Zero(t, dispatcher.callCount(), "no notification on validation failure")
}

func TestCreateCategory_DuplicateNameRejected(t *testing.T) {
	svc, _, db := newCategoryFixture(t)

	_, fieldErrs, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	_, fieldErrs, err = svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nama sudah terdaftar, silakan pilih nama lain.", fieldErrs["nama"])

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateCategory_OwnNameAllowed(t *testing.T) {
	svc, dispatcher, _ := newCategoryFixture(t)

	category, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)

	// Nama tetap sama: cek unik harus mengecualikan dirinya sendiri
	updated, fieldErrs, err := svc.Update(category.ID, &CategoryRequest{Nama: "Minuman", Deskripsi: "baru"}, nil)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, "baru", updated.Description)

	call := dispatcher.lastCall(t)
	assert.Equal(t, jobs.ActionUpdate, call.action)
}

func TestUpdateCategory_TakenNameRejected(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	_, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)
	other, _, err := svc.Create(&CategoryRequest{Nama: "Makanan"}, nil)
	require.NoError(t, err)

	_, fieldErrs, err := svc.Update(other.ID, &CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nama sudah terdaftar, silakan pilih nama lain.", fieldErrs["nama"])
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	_, _, err := svc.Update(uuid.New(), &CategoryRequest{Nama: "Minuman"}, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestBulkDeleteCategories_EmptySelectionRejected(t *testing.T) {
	svc, dispatcher, db := newCategoryFixture(t)

	_, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)
	before := dispatcher.callCount()

	fieldErrs, err := svc.BulkDelete(&BulkDeleteCategoriesRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Silakan pilih setidaknya satu kategori untuk dihapus.", fieldErrs["kategoris"])

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count, "nothing may be deleted")
	assert.Equal(t, before, dispatcher.callCount())
}

func TestBulkDeleteCategories_UnknownIDRejected(t *testing.T) {
	svc, _, db := newCategoryFixture(t)

	category, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)

	fieldErrs, err := svc.BulkDelete(&BulkDeleteCategoriesRequest{
		Kategoris: []uuid.UUID{category.ID, uuid.New()},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Kategori yang dipilih tidak valid.", fieldErrs["kategoris"])

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count, "rejection must happen before any deletion")
}

func TestBulkDeleteCategories_NilIDRejected(t *testing.T) {
	svc, _, db := newCategoryFixture(t)

	category, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)

	fieldErrs, err := svc.BulkDelete(&BulkDeleteCategoriesRequest{
		Kategoris: []uuid.UUID{category.ID, uuid.Nil},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Kategori yang dipilih tidak valid.", fieldErrs["kategoris"])

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestBulkDeleteCategories_DuplicateIDsAccepted(t *testing.T) {
	svc, dispatcher, db := newCategoryFixture(t)

	category, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)

	// Id yang sama dua kali tetap pilihan yang sah dan dihitung satu baris
	fieldErrs, err := svc.BulkDelete(&BulkDeleteCategoriesRequest{
		Kategoris: []uuid.UUID{category.ID, category.ID},
	}, nil)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.Zero(t, count)

	call := dispatcher.lastCall(t)
	assert.Equal(t, jobs.ActionDestroy, call.action)
	assert.Equal(t, []string{"Minuman"}, call.names)
}

func TestBulkDeleteCategories_RemovesSelectedOnly(t *testing.T) {
	svc, dispatcher, db := newCategoryFixture(t)
	userID := uuid.New()

	a, _, _ := svc.Create(&CategoryRequest{Nama: "Minuman"}, &userID)
	b, _, _ := svc.Create(&CategoryRequest{Nama: "Makanan"}, &userID)
	_, _, err := svc.Create(&CategoryRequest{Nama: "Cemilan"}, &userID)
	require.NoError(t, err)

	fieldErrs, err := svc.BulkDelete(&BulkDeleteCategoriesRequest{
		Kategoris: []uuid.UUID{a.ID, b.ID},
	}, &userID)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	var remaining []model.Category
	db.Find(&remaining)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Cemilan", remaining[0].Name)

	// Notifikasi destroy memuat nama semua baris terhapus
	call := dispatcher.lastCall(t)
	assert.Equal(t, jobs.ActionDestroy, call.action)
	assert.ElementsMatch(t, []string{"Minuman", "Makanan"}, call.names)

	// Satu baris audit generik untuk seluruh operasi bulk
	var logCount int64
	db.Model(&model.ActivityLog{}).Where("action = ?", "menghapus kategori").Count(&logCount)
	assert.EqualValues(t, 1, logCount)
}

func TestBulkDeleteCategories_CascadesToMenus(t *testing.T) {
	svc, _, db := newCategoryFixture(t)

	category, _, err := svc.Create(&CategoryRequest{Nama: "Minuman"}, nil)
	require.NoError(t, err)
	keep, _, err := svc.Create(&CategoryRequest{Nama: "Makanan"}, nil)
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.Menu{
		Name: "Es Teh", CategoryID: category.ID, CostPrice: 2000, SalePrice: 5000,
	}).Error)
	require.NoError(t, db.Create(&model.Menu{
		Name: "Nasi Goreng", CategoryID: keep.ID, CostPrice: 10000, SalePrice: 15000,
	}).Error)

	fieldErrs, err := svc.BulkDelete(&BulkDeleteCategoriesRequest{
		Kategoris: []uuid.UUID{category.ID},
	}, nil)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	// Tidak boleh ada menu yatim: baris di kategori terhapus ikut hilang
	var menus []model.Menu
	db.Find(&menus)
	require.Len(t, menus, 1)
	assert.Equal(t, "Nasi Goreng", menus[0].Name)
	assert.Equal(t, keep.ID, menus[0].CategoryID)
}
