package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestSubmitCopiesTenantID(t *testing.T) {
	db := setupTestDB(t)
	formService := setupFormService(t, db)
	service := NewSubmissionService(db)

	form, err := formService.Create("T", "", testSchema())
	require.NoError(t, err)

	submission, err := service.Submit(form.ID, datatypes.JSON(`{"name":"张三"}`))
	require.NoError(t, err)
	require.NotZero(t, submission.ID)
	// 租户ID从所属表单复制
	assert.Equal(t, form.TenantID, submission.TenantID)
	assert.Equal(t, form.ID, submission.FormID)
	assert.False(t, submission.SubmittedAt.IsZero())
	assert.JSONEq(t, `{"name":"张三"}`, string(submission.Data))
}

func TestSubmitFormNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubmissionService(db)

	_, err := service.Submit(9999, datatypes.JSON(`{}`))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListByFormEmpty(t *testing.T) {
	db := setupTestDB(t)
	formService := setupFormService(t, db)
	service := NewSubmissionService(db)

	form, err := formService.Create("T", "", testSchema())
	require.NoError(t, err)

	// 表单存在但无提交：返回空列表而非错误
	submissions, err := service.ListByForm(form.ID)
	require.NoError(t, err)
	require.NotNil(t, submissions)
	require.Empty(t, submissions)
}

func TestListByFormNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewSubmissionService(db)

	_, err := service.ListByForm(9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListByFormReturnsAll(t *testing.T) {
	db := setupTestDB(t)
	formService := setupFormService(t, db)
	service := NewSubmissionService(db)

	form, err := formService.Create("T", "", testSchema())
	require.NoError(t, err)
	other, err := formService.Create("other", "", testSchema())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := service.Submit(form.ID, datatypes.JSON(`{"n":1}`))
		require.NoError(t, err)
	}
	_, err = service.Submit(other.ID, datatypes.JSON(`{"n":2}`))
	require.NoError(t, err)

	submissions, err := service.ListByForm(form.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	for _, s := range submissions {
		assert.Equal(t, form.ID, s.FormID)
	}
}
