package services

import (
	"testing"

	"github.com/corinnecd/Dynamis-Blog-2025/internal/models"
)

func TestCanModifyPost(t *testing.T) {
	author := "u1"
	post := &models.Post{ID: "p1", AuthorID: &author}
	orphan := &models.Post{ID: "p2"}

	cases := []struct {
		name    string
		profile *models.Profile
		userID  string
		post    *models.Post
		want    bool
	}{
		{"автор своей статьи", &models.Profile{ID: "u1"}, "u1", post, true},
		{"чужая статья", &models.Profile{ID: "u2"}, "u2", post, false},
		{"супер-админ и чужая статья", &models.Profile{ID: "u2", IsSuperAdmin: true}, "u2", post, true},
		{"супер-админ без профиля автора", &models.Profile{ID: "adm", IsSuperAdmin: true}, "adm", orphan, true},
		{"статья без автора", &models.Profile{ID: "u1"}, "u1", orphan, false},
		{"пустой userID", nil, "", post, false},
		{"nil-профиль, совпадающий userID", nil, "u1", post, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanModifyPost(tc.profile, tc.userID, tc.post); got != tc.want {
				t.Fatalf("CanModifyPost = %v, ожидалось %v", got, tc.want)
			}
		})
	}
}
