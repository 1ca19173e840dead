package policy

import (
	"net/http"

	"yatube/internal/models"
)

// DeniedMessage - фиксированное сообщение для отказа в доступе.
// Всегда 403, а не 404: клиент должен отличать "запрещено" от "не найдено".
const DeniedMessage = "У вас недостаточно прав для выполнения данного действия."

// Resource - тип ресурса в таблице возможностей.
type Resource string

const (
	ResourcePost    Resource = "post"
	ResourceComment Resource = "comment"
	ResourceGroup   Resource = "group"
	ResourceFollow  Resource = "follow"
)

// Capability - что требуется от принципала для операции.
type Capability int

const (
	CapAnyone Capability = iota
	CapAuthenticated
	CapOwner
	CapAdmin
)

// VerbClass делит HTTP-методы на чтение, создание и изменение/удаление.
type VerbClass int

const (
	VerbRead VerbClass = iota
	VerbCreate
	VerbMutate
)

// Principal - явный контекст запроса вместо глобального "текущего пользователя".
// Zero value означает анонимного вызывающего.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}

func (p Principal) Authenticated() bool {
	return p.UserID != 0
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// capabilityTable - единая таблица (ресурс, класс операции) -> требуемая возможность.
// Group изменяется только администратором; Follow не имеет объектной проверки,
// видимость его записей обеспечивается выборкой по подписчику.
var capabilityTable = map[Resource]map[VerbClass]Capability{
	ResourcePost: {
		VerbRead:   CapAnyone,
		VerbCreate: CapAuthenticated,
		VerbMutate: CapOwner,
	},
	ResourceComment: {
		VerbRead:   CapAnyone,
		VerbCreate: CapAuthenticated,
		VerbMutate: CapOwner,
	},
	ResourceGroup: {
		VerbRead:   CapAnyone,
		VerbCreate: CapAdmin,
		VerbMutate: CapAdmin,
	},
	ResourceFollow: {
		VerbRead:   CapAuthenticated,
		VerbCreate: CapAuthenticated,
	},
}

// ClassifyMethod относит HTTP-метод к классу операции.
func ClassifyMethod(method string) VerbClass {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return VerbRead
	case http.MethodPost:
		return VerbCreate
	default:
		return VerbMutate
	}
}

// Decision - результат проверки политики.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Check применяет таблицу возможностей к принципалу и владельцу объекта.
// ownerID имеет значение только когда требуется CapOwner; для операций
// без объекта (list/create) передаётся 0.
func Check(p Principal, resource Resource, method string, ownerID int64) Decision {
	verbs, ok := capabilityTable[resource]
	if !ok {
		return DenyForbidden
	}

	required, ok := verbs[ClassifyMethod(method)]
	if !ok {
		return DenyForbidden
	}

	switch required {
	case CapAnyone:
		return Allow
	case CapAuthenticated:
		if !p.Authenticated() {
			return DenyUnauthenticated
		}
		return Allow
	case CapOwner:
		if !p.Authenticated() {
			return DenyUnauthenticated
		}
		if p.UserID != ownerID {
			return DenyForbidden
		}
		return Allow
	case CapAdmin:
		if !p.Authenticated() {
			return DenyUnauthenticated
		}
		if !p.IsAdmin() {
			return DenyForbidden
		}
		return Allow
	}

	return DenyForbidden
}
