package policy

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"yatube/internal/models"
)

func TestClassifyMethod(t *testing.T) {
	assert.Equal(t, VerbRead, ClassifyMethod(http.MethodGet))
	assert.Equal(t, VerbRead, ClassifyMethod(http.MethodHead))
	assert.Equal(t, VerbCreate, ClassifyMethod(http.MethodPost))
	assert.Equal(t, VerbMutate, ClassifyMethod(http.MethodPut))
	assert.Equal(t, VerbMutate, ClassifyMethod(http.MethodPatch))
	assert.Equal(t, VerbMutate, ClassifyMethod(http.MethodDelete))
}

func TestCheck(t *testing.T) {
	owner := Principal{UserID: 1, Username: "leo", Role: models.RoleUser}
	other := Principal{UserID: 2, Username: "anna", Role: models.RoleUser}
	admin := Principal{UserID: 3, Username: "root", Role: models.RoleAdmin}
	anonymous := Principal{}

	tests := []struct {
		name      string
		principal Principal
		resource  Resource
		method    string
		ownerID   int64
		want      Decision
	}{
		{"Аноним читает посты", anonymous, ResourcePost, http.MethodGet, 0, Allow},
		{"Аноним не может создать пост", anonymous, ResourcePost, http.MethodPost, 0, DenyUnauthenticated},
		{"Авторизованный создаёт пост", other, ResourcePost, http.MethodPost, 0, Allow},
		{"Автор обновляет свой пост", owner, ResourcePost, http.MethodPatch, 1, Allow},
		{"Чужой пост обновить нельзя", other, ResourcePost, http.MethodPatch, 1, DenyForbidden},
		{"Чужой пост удалить нельзя", other, ResourcePost, http.MethodDelete, 1, DenyForbidden},
		{"Аноним не может удалить пост", anonymous, ResourcePost, http.MethodDelete, 1, DenyUnauthenticated},
		{"Автор удаляет свой комментарий", owner, ResourceComment, http.MethodDelete, 1, Allow},
		{"Чужой комментарий менять нельзя", other, ResourceComment, http.MethodPut, 1, DenyForbidden},
		{"Группы читает аноним", anonymous, ResourceGroup, http.MethodGet, 0, Allow},
		{"Группу создаёт только админ", owner, ResourceGroup, http.MethodPost, 0, DenyForbidden},
		{"Админ создаёт группу", admin, ResourceGroup, http.MethodPost, 0, Allow},
		{"Админ удаляет группу", admin, ResourceGroup, http.MethodDelete, 0, Allow},
		{"Подписки видит только авторизованный", anonymous, ResourceFollow, http.MethodGet, 0, DenyUnauthenticated},
		{"Авторизованный видит свои подписки", owner, ResourceFollow, http.MethodGet, 0, Allow},
		{"Подписка без объектной проверки", other, ResourceFollow, http.MethodPost, 0, Allow},
		{"Удаление подписок не поддерживается", owner, ResourceFollow, http.MethodDelete, 0, DenyForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.principal, tt.resource, tt.method, tt.ownerID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	p := Principal{UserID: 7, Username: "leo", Role: models.RoleUser}

	ctx := WithPrincipal(context.Background(), p)
	assert.Equal(t, p, PrincipalFrom(ctx))

	// пустой контекст отдаёт анонима
	anon := PrincipalFrom(context.Background())
	assert.False(t, anon.Authenticated())
}
