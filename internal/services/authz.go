package services

import "github.com/corinnecd/Dynamis-Blog-2025/internal/models"

// CanModifyPost — единственное правило авторизации мутаций статей:
// супер-админ может всё, автор — только своё. Профиль может отсутствовать
// (nil) — тогда решает только авторство.
func CanModifyPost(profile *models.Profile, userID string, post *models.Post) bool {
	if profile != nil && profile.IsSuperAdmin {
		return true
	}
	if userID == "" || post.AuthorID == nil {
		return false
	}
	return *post.AuthorID == userID
}
