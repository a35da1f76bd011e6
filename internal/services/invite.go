package services

import (
	"fmt"

	"formio/internal/models"
	"formio/pkg/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InviteService 表单分享邀请服务
// 当前只负责生成分享链接和邮件内容，不做实际投递
type InviteService struct {
	db      *gorm.DB
	log     *logrus.Logger
	baseURL string
}

func NewInviteService(db *gorm.DB, baseURL string) *InviteService {
	return &InviteService{
		db:      db,
		log:     logger.GetLogger(),
		baseURL: baseURL,
	}
}

// InviteResult 邀请结果
type InviteResult struct {
	Message string `json:"message"`
	FormURL string `json:"form_url"`
}

// PrepareInvite 查找表单并生成分享链接和HTML邮件内容
func (s *InviteService) PrepareInvite(formID uint, email, subject, message string) (*InviteResult, error) {
	var form models.Form
	if err := s.db.First(&form, formID).Error; err != nil {
		return nil, err
	}

	if subject == "" {
		subject = "Form to fill"
	}
	if message == "" {
		message = "Please fill out this form"
	}

	formURL := fmt.Sprintf("%s/forms/%d", s.baseURL, form.ID)

	body := fmt.Sprintf(`<html>
    <body>
        <h2>Form: %s</h2>
        <p>%s</p>
        <p>Please click the link below to fill out the form:</p>
        <a href="%s">%s</a>
    </body>
</html>`, form.Title, message, formURL, formURL)

	// TODO: 接入邮件网关后在此投递 subject/body
	s.log.Debugf("invite email prepared: subject=%q body=%s", subject, body)
	s.log.Infof("Email prepared for %s (SMTP not configured)", email)

	return &InviteResult{
		Message: fmt.Sprintf("Form link sent to %s", email),
		FormURL: formURL,
	}, nil
}
