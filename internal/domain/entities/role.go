package entities

import (
	"encoding/json"
	"fmt"
)

// UserRole representa o papel de um usuário dentro da família
type UserRole struct {
	code        int
	key         string
	name        string
	description string
}

var (
	RoleAdmin  = UserRole{code: 0, key: "ADMIN", name: "超级管理员", description: "拥有所有权限"}
	RoleMember = UserRole{code: 1, key: "MEMBER", name: "家庭成员", description: "拥有基本读写权限"}
	RoleGuest  = UserRole{code: 2, key: "GUEST", name: "游客", description: "只有只读权限"}
)

// userRoles é a tabela fechada de papéis, na ordem de busca
var userRoles = []UserRole{RoleAdmin, RoleMember, RoleGuest}

// UserRoleFromCode converte o código persistido em UserRole.
// Códigos desconhecidos resultam em RoleMember.
func UserRoleFromCode(code int) UserRole {
	for _, r := range userRoles {
		if r.code == code {
			return r
		}
	}
	return RoleMember
}

// ParseUserRole converte o identificador textual (ADMIN, MEMBER, GUEST)
func ParseUserRole(key string) (UserRole, error) {
	for _, r := range userRoles {
		if r.key == key {
			return r, nil
		}
	}
	return UserRole{}, fmt.Errorf("unknown user role %q", key)
}

func (r UserRole) Code() int           { return r.code }
func (r UserRole) Name() string        { return r.name }
func (r UserRole) Description() string { return r.description }
func (r UserRole) String() string      { return r.key }

// IsZero indica que o papel não foi definido
func (r UserRole) IsZero() bool {
	return r.key == ""
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.key)
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return err
	}
	role, err := ParseUserRole(key)
	if err != nil {
		return err
	}
	*r = role
	return nil
}
